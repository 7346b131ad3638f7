package transport

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	amqpmocks "github.com/scoir/canis-exchange/pkg/amqp/mocks"
	"github.com/scoir/canis-exchange/pkg/crypto"
	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/datastore/memory"
	"github.com/scoir/canis-exchange/pkg/schema"
	trmocks "github.com/scoir/canis-exchange/pkg/transport/mocks"
)

type agent struct {
	keys     *crypto.Keyring
	dir      *memory.Directory
	crypto   *Crypto
	endpoint string
}

// switchboard routes sealed bytes to whichever agent owns the endpoint.
type switchboard struct {
	mu     sync.Mutex
	agents map[string]*agent
	got    map[string][]*schema.Envelope
}

func (r *switchboard) Deliver(ctx context.Context, endpointDID string, msg []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.agents[endpointDID]
	if !ok {
		return errors.New("no such endpoint")
	}

	env, err := a.crypto.Open(ctx, msg)
	if err != nil {
		return err
	}

	r.got[endpointDID] = append(r.got[endpointDID], env)
	return nil
}

func newAgent(t *testing.T, sb *switchboard, endpoint string) *agent {
	a := &agent{keys: crypto.NewKeyring(), dir: memory.NewDirectory(), endpoint: endpoint}
	_, err := a.keys.Create(endpoint)
	require.NoError(t, err)
	a.crypto = NewCrypto(a.keys, a.dir, sb, endpoint)
	sb.agents[endpoint] = a
	return a
}

func pair(t *testing.T, a *agent, aDID string, b *agent, bDID string) {
	ctx := context.Background()
	aKey, err := a.keys.Create(aDID)
	require.NoError(t, err)
	bKey, err := b.keys.Create(bDID)
	require.NoError(t, err)

	aEnd, err := a.keys.Get(a.endpoint)
	require.NoError(t, err)
	bEnd, err := b.keys.Get(b.endpoint)
	require.NoError(t, err)

	require.NoError(t, a.dir.AddPairwise(ctx, &datastore.Pairwise{TheirDID: bDID, MyDID: aDID, TheirVerKey: bKey,
		TheirEndpointDID: b.endpoint, TheirEndpointVerKey: bEnd.VerKey()}))
	require.NoError(t, b.dir.AddPairwise(ctx, &datastore.Pairwise{TheirDID: aDID, MyDID: bDID, TheirVerKey: aKey,
		TheirEndpointDID: a.endpoint, TheirEndpointVerKey: aEnd.VerKey()}))
}

func TestCrypto_RoundTrip(t *testing.T) {
	ctx := context.Background()
	sb := &switchboard{agents: map[string]*agent{}, got: map[string][]*schema.Envelope{}}
	issuer := newAgent(t, sb, "did:issuer-endpoint")
	holder := newAgent(t, sb, "did:holder-endpoint")
	pair(t, issuer, "did:issuer", holder, "did:holder")

	offer := &schema.IndyCredentialOffer{SchemaID: "S1", CredDefID: "CD1", Nonce: "1",
		Data: map[string]string{"name": "Alice"}}

	env, err := issuer.crypto.Authcrypt(ctx, "did:issuer", "did:holder", schema.CredentialOfferMsgType, offer)
	require.NoError(t, err)
	require.Equal(t, "did:issuer", env.Origin)
	require.NotContains(t, string(env.Message), "Alice")

	require.NoError(t, issuer.crypto.SendAnoncrypted(ctx, "did:holder-endpoint", env))
	require.Len(t, sb.got["did:holder-endpoint"], 1)
	received := sb.got["did:holder-endpoint"][0]

	got := &schema.IndyCredentialOffer{}
	require.NoError(t, holder.crypto.AuthDecrypt(ctx, "did:holder", received, got))
	require.Equal(t, offer, got)

	t.Run("wrong payload type", func(t *testing.T) {
		_, err := issuer.crypto.Authcrypt(ctx, "did:issuer", "did:holder", schema.ProofMsgType, offer)
		require.True(t, errors.Is(err, schema.ErrUnexpectedPayload))

		err = holder.crypto.AuthDecrypt(ctx, "did:holder", received, &schema.IndyProof{})
		require.True(t, errors.Is(err, schema.ErrUnexpectedPayload))
	})

	t.Run("wrong recipient DID", func(t *testing.T) {
		_, err := holder.keys.Create("did:holder-other")
		require.NoError(t, err)
		err = holder.crypto.AuthDecrypt(ctx, "did:holder-other", received, &schema.IndyCredentialOffer{})
		require.Error(t, err)
	})

	t.Run("unknown counterpart", func(t *testing.T) {
		_, err := issuer.crypto.Authcrypt(ctx, "did:issuer", "did:stranger", schema.CredentialOfferMsgType, offer)
		require.True(t, errors.Is(err, datastore.ErrNotFound))
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		err := issuer.crypto.SendAnoncrypted(ctx, "did:nowhere", env)
		require.True(t, errors.Is(err, ErrUnknownEndpoint))
	})

	t.Run("sealed for someone else", func(t *testing.T) {
		_, err := issuer.crypto.Open(ctx, []byte("garbage that is long enough to not be too short for the box"))
		require.True(t, errors.Is(err, crypto.ErrDecrypt))
	})
}

func TestLoopback(t *testing.T) {
	ctx := context.Background()
	loop := NewLoopback()

	offer := &schema.IndyCredentialOffer{SchemaID: "S1", CredDefID: "CD1", Nonce: "1"}
	env, err := loop.Authcrypt(ctx, "did:me", SelfDID, schema.CredentialOfferMsgType, offer)
	require.NoError(t, err)
	require.Equal(t, SelfDID, env.Origin)

	require.Error(t, loop.SendAnoncrypted(ctx, SelfDID, env))

	var delivered *schema.Envelope
	loop.Attach(HandlerFunc(func(ctx context.Context, env *schema.Envelope) error {
		delivered = env
		return nil
	}))

	require.NoError(t, loop.SendAnoncrypted(ctx, SelfDID, env))
	require.Equal(t, env, delivered)

	got := &schema.IndyCredentialOffer{}
	require.NoError(t, loop.AuthDecrypt(ctx, "did:me", delivered, got))
	require.Equal(t, offer, got)

	err = loop.AuthDecrypt(ctx, "did:me", &schema.Envelope{Origin: "did:other", Type: schema.CredentialOfferMsgType, Message: env.Message}, got)
	require.Error(t, err)

	loop.Attach(HandlerFunc(func(ctx context.Context, env *schema.Envelope) error {
		return errors.New("handler failed")
	}))
	require.EqualError(t, loop.SendAnoncrypted(ctx, SelfDID, env), "handler failed")
}

func TestAMQPOutbound(t *testing.T) {
	ctx := context.Background()
	pub := &amqpmocks.Publisher{}
	pub.On("Publish", ctx, "canis.agent.did:x", []byte("sealed"), sealedContentType).Return(nil).Once()
	pub.On("Publish", ctx, "canis.agent.did:y", mock.Anything, sealedContentType).Return(errors.New("closed")).Once()

	out := NewAMQPOutbound(pub)
	require.NoError(t, out.Deliver(ctx, "did:x", []byte("sealed")))
	require.Error(t, out.Deliver(ctx, "did:y", []byte("sealed")))

	pub.AssertExpectations(t)
}

type opener struct {
	env *schema.Envelope
	err error
}

func (r *opener) Open(_ context.Context, sealed []byte) (*schema.Envelope, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.env, nil
}

type acker struct {
	mu   sync.Mutex
	acks int
}

func (r *acker) Ack(tag uint64, multiple bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.acks++
	return nil
}

func (r *acker) Nack(tag uint64, multiple bool, requeue bool) error { return nil }
func (r *acker) Reject(tag uint64, requeue bool) error              { return nil }

func (r *acker) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.acks
}

func TestInbound(t *testing.T) {
	start := func(t *testing.T, op *opener, h Handler) (chan amqp.Delivery, context.CancelFunc) {
		ctx, cancel := context.WithCancel(context.Background())

		deliveries := make(chan amqp.Delivery, 2)
		listener := &amqpmocks.Listener{}
		listener.On("Listen").Return((<-chan amqp.Delivery)(deliveries), nil)
		listener.On("Close").Return(nil).Maybe()

		require.NoError(t, NewInbound(listener, op, h).Start(ctx))
		return deliveries, cancel
	}

	t.Run("handler failure is acked", func(t *testing.T) {
		env := &schema.Envelope{Origin: "did:a", Type: schema.ProofMsgType, Message: []byte("x")}
		handled := make(chan struct{}, 1)
		h := &trmocks.Handler{}
		h.On("Handle", mock.Anything, env).Run(func(mock.Arguments) {
			handled <- struct{}{}
		}).Return(errors.New("no matching request"))

		deliveries, cancel := start(t, &opener{env: env}, h)
		defer cancel()

		ack := &acker{}
		deliveries <- amqp.Delivery{Acknowledger: ack, Body: []byte("sealed")}

		select {
		case <-handled:
		case <-time.After(time.Second):
			t.Fatal("delivery was not handled")
		}

		require.Eventually(t, func() bool { return ack.count() == 1 }, time.Second, 5*time.Millisecond)
		h.AssertNumberOfCalls(t, "Handle", 1)
	})

	t.Run("undecryptable delivery skips the handler", func(t *testing.T) {
		h := &trmocks.Handler{}

		deliveries, cancel := start(t, &opener{err: crypto.ErrDecrypt}, h)
		defer cancel()

		ack := &acker{}
		deliveries <- amqp.Delivery{Acknowledger: ack, Body: []byte("garbage")}

		require.Eventually(t, func() bool { return ack.count() == 1 }, time.Second, 5*time.Millisecond)
		h.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestInbound_ListenFails(t *testing.T) {
	listener := &amqpmocks.Listener{}
	listener.On("Listen").Return(nil, errors.New("channel closed"))

	in := NewInbound(listener, &opener{}, HandlerFunc(func(ctx context.Context, env *schema.Envelope) error { return nil }))
	require.Error(t, in.Start(context.Background()))
}
