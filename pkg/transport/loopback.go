package transport

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/schema"
)

// Loopback is the Messenger an agent uses to talk to itself. Payloads pass through unencrypted and
// SendAnoncrypted hands the envelope straight to the attached Handler before returning.
type Loopback struct {
	mu      sync.RWMutex
	handler Handler
}

func NewLoopback() *Loopback {
	return &Loopback{}
}

// Attach sets the handler that receives every sent envelope.
func (r *Loopback) Attach(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handler = h
}

func (r *Loopback) Authcrypt(_ context.Context, _, _ string, typ schema.MessageType, payload schema.Payload) (*schema.Envelope, error) {
	err := schema.CheckPayload(typ, payload)
	if err != nil {
		return nil, err
	}

	d, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to marshal %s", typ)
	}

	return &schema.Envelope{Origin: SelfDID, Type: typ, Message: d}, nil
}

func (r *Loopback) AuthDecrypt(_ context.Context, _ string, env *schema.Envelope, out schema.Payload) error {
	if env.Origin != SelfDID {
		return errors.Errorf("loopback cannot open a message from %s", env.Origin)
	}

	return schema.DecodePayload(env.Type, env.Message, out)
}

func (r *Loopback) SendAnoncrypted(ctx context.Context, _ string, env *schema.Envelope) error {
	r.mu.RLock()
	h := r.handler
	r.mu.RUnlock()

	if h == nil {
		return errors.New("loopback has no handler attached")
	}

	err := env.Validate()
	if err != nil {
		return err
	}

	return h.Handle(ctx, env)
}
