package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/scoir/canis-exchange/pkg/amqp"
	"github.com/scoir/canis-exchange/pkg/framework"
)

var logger = logrus.WithField("module", "notifier")

// Server posts the notifications queued for one agent to the webhooks registered for their topic.
type Server struct {
	hooks    map[string][]string
	listener amqp.Listener
	client   *http.Client

	errLock sync.RWMutex
	errors  chan error
}

func New(hooks []*framework.Webhook, listener amqp.Listener, client *http.Client) *Server {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	srv := &Server{
		hooks:    map[string][]string{},
		listener: listener,
		client:   client,
	}

	for _, hook := range hooks {
		srv.hooks[hook.Topic] = append(srv.hooks[hook.Topic], hook.URL)
	}

	return srv
}

// Start consumes until ctx is done or the listener closes.
func (r *Server) Start(ctx context.Context) error {
	msgs, err := r.listener.Listen()
	if err != nil {
		return errors.Wrap(err, "unable to consume")
	}

	for {
		select {
		case <-ctx.Done():
			_ = r.listener.Close()
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("notification messages closed")
			}

			r.deliver(ctx, d.Body)
			_ = d.Ack(false)
		}
	}
}

func (r *Server) deliver(ctx context.Context, body []byte) {
	note := &Notification{}
	err := json.Unmarshal(body, note)
	if err != nil {
		r.Error(errors.Wrap(err, "bad notification message"))
		return
	}

	hooks := r.hooks[note.Topic]
	if len(hooks) == 0 {
		return
	}

	event := &EventMessage{
		Event:     note.Event,
		Timestamp: time.Now().Unix(),
		EventData: note.EventData,
	}
	data, _ := json.Marshal(event)
	for _, hook := range hooks {
		err = r.post(ctx, hook, data)
		if err != nil {
			r.Error(err)
		}
	}
}

func (r *Server) post(ctx context.Context, hook string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hook, bytes.NewBuffer(data))
	if err != nil {
		return errors.Wrapf(err, "bad hook %s", hook)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "unable to post event to hook %s", hook)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		b, _ := ioutil.ReadAll(resp.Body)
		return errors.Errorf("error response from hook. code: (%d): %s", resp.StatusCode, string(b))
	}

	return nil
}

func (r *Server) Error(err error) {
	r.errLock.RLock()
	ch := r.errors
	r.errLock.RUnlock()

	if ch == nil {
		logger.WithError(err).Warn("webhook delivery failed")
		return
	}

	ch <- err
}

// Errors registers a receiver for delivery failures. Once registered it must be drained.
func (r *Server) Errors() (chan error, error) {
	r.errLock.Lock()
	defer r.errLock.Unlock()

	if r.errors != nil {
		return nil, errors.New("error listener already registered")
	}

	r.errors = make(chan error, 1)
	return r.errors, nil
}
