package agent

import (
	"context"
	"testing"
	"time"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cxamqp "github.com/scoir/canis-exchange/pkg/amqp"
	amqpmocks "github.com/scoir/canis-exchange/pkg/amqp/mocks"
	"github.com/scoir/canis-exchange/pkg/credential"
	"github.com/scoir/canis-exchange/pkg/crypto"
	"github.com/scoir/canis-exchange/pkg/datastore/memory"
	"github.com/scoir/canis-exchange/pkg/framework"
	"github.com/scoir/canis-exchange/pkg/notifier"
	nmocks "github.com/scoir/canis-exchange/pkg/notifier/mocks"
	"github.com/scoir/canis-exchange/pkg/schema"
	"github.com/scoir/canis-exchange/pkg/transport"
	trmocks "github.com/scoir/canis-exchange/pkg/transport/mocks"
)

func seed(b byte) string {
	raw := make([]byte, crypto.KeySize)
	for i := range raw {
		raw[i] = b
	}
	return base58.Encode(raw)
}

func verkey(b byte) string {
	kp, err := crypto.KeyPairFromSeed(seed(b))
	if err != nil {
		panic(err)
	}
	return kp.VerKey()
}

func agentConfig() *framework.AgentConfig {
	return &framework.AgentConfig{
		EndpointDID:  "did:issuer-endpoint",
		EndpointSeed: seed(1),
		Relationships: []*framework.Relationship{
			{
				TheirDID:            "did:holder",
				TheirVerKey:         verkey(3),
				TheirEndpointDID:    "did:holder-endpoint",
				TheirEndpointVerKey: verkey(4),
				MyDID:               "did:issuer",
				MySeed:              seed(2),
			},
		},
	}
}

func ledgerConfig() *framework.LedgerConfig {
	return &framework.LedgerConfig{
		Backend: "memory",
		Schemas: []*framework.SchemaSeed{
			{Name: "person", Version: "1.0", Attributes: []string{"name", "age"}, Tag: "CD1"},
		},
	}
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("bootstrap", func(t *testing.T) {
		out := &trmocks.Outbound{}
		a, err := New(ctx, agentConfig(), ledgerConfig(), memory.NewProvider(), out, nil)
		require.NoError(t, err)

		endpoint, err := a.Directory().EndpointDID(ctx)
		require.NoError(t, err)
		require.Equal(t, "did:issuer-endpoint", endpoint)

		pw, err := a.Directory().GetPairwise(ctx, "did:holder")
		require.NoError(t, err)
		require.Equal(t, "did:issuer", pw.MyDID)
		require.Equal(t, "did:holder-endpoint", pw.TheirEndpointDID)

		kp, err := a.keys.Get("did:issuer")
		require.NoError(t, err)
		expected, err := crypto.KeyPairFromSeed(seed(2))
		require.NoError(t, err)
		require.Equal(t, expected.VerKey(), kp.VerKey())

		require.Len(t, a.CredDefIDs(), 1)
		require.Equal(t, "did:issuer-endpoint", a.EndpointDID())
	})

	t.Run("ephemeral keys without seeds", func(t *testing.T) {
		cfg := agentConfig()
		cfg.EndpointSeed = ""
		cfg.Relationships[0].MySeed = ""

		a, err := New(ctx, cfg, ledgerConfig(), memory.NewProvider(), &trmocks.Outbound{}, nil)
		require.NoError(t, err)

		_, err = a.keys.Get("did:issuer-endpoint")
		require.NoError(t, err)
		_, err = a.keys.Get("did:issuer")
		require.NoError(t, err)
	})

	t.Run("bad seed", func(t *testing.T) {
		cfg := agentConfig()
		cfg.Relationships[0].MySeed = "short"

		_, err := New(ctx, cfg, ledgerConfig(), memory.NewProvider(), &trmocks.Outbound{}, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "bad seed for did:issuer")
	})

	t.Run("no ledger backend", func(t *testing.T) {
		_, err := New(ctx, agentConfig(), &framework.LedgerConfig{}, memory.NewProvider(), &trmocks.Outbound{}, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "unable to open ledger")
	})
}

func TestAgent_SelfExchange(t *testing.T) {
	ctx := context.Background()
	out := &trmocks.Outbound{}
	a, err := New(ctx, agentConfig(), ledgerConfig(), memory.NewProvider(), out, nil)
	require.NoError(t, err)

	_, err = a.CredentialExchange().SendOffer(ctx, credential.SelfDID, a.CredDefIDs()[0], `{"name":"Alice","age":30}`)
	require.NoError(t, err)

	creds, err := a.CredentialExchange().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, creds, 1)
	require.Equal(t, map[string]string{"name": "Alice", "age": "30"}, creds[0].Attrs)

	templates, err := a.ProofExchange().GetProofRequests(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)

	_, err = a.ProofExchange().SendRequest(ctx, credential.SelfDID,
		`{"name":"CD1-Proof","version":"0.1","requested_attributes":{"attr1_referent":{"name":"name"}},"requested_predicates":{}}`)
	require.NoError(t, err)

	proofs, err := a.Directory().ListProofs(ctx, credential.SelfDID)
	require.NoError(t, err)
	require.Len(t, proofs, 1)
	require.Equal(t, "Alice", proofs[0].Proof.RequestedProof.RevealedAttrs["attr1_referent"].Raw)

	entries, err := a.Correlator().Pending(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)

	out.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything, mock.Anything)
}

func TestAgent_SendOfferDelivers(t *testing.T) {
	ctx := context.Background()
	out := &trmocks.Outbound{}
	out.On("Deliver", mock.Anything, "did:holder-endpoint", mock.AnythingOfType("[]uint8")).Return(nil)

	a, err := New(ctx, agentConfig(), ledgerConfig(), memory.NewProvider(), out, nil)
	require.NoError(t, err)

	_, err = a.CredentialExchange().SendOffer(ctx, "did:holder", a.CredDefIDs()[0], `{"name":"Alice"}`)
	require.NoError(t, err)

	out.AssertExpectations(t)
	entries, err := a.Correlator().Pending(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestAgent_Deliver(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, agentConfig(), ledgerConfig(), memory.NewProvider(), &trmocks.Outbound{}, nil)
	require.NoError(t, err)

	err = a.Deliver(ctx, []byte("not sealed"))
	require.Error(t, err)

	kp, err := a.keys.Get("did:issuer-endpoint")
	require.NoError(t, err)
	sealed, err := crypto.AnonCrypt(kp.Public, []byte(`{"origin":"did:stranger","type":"`+
		string(schema.CredentialOfferMsgType)+`","message":"e30="}`), nil)
	require.NoError(t, err)

	require.NoError(t, a.Deliver(ctx, sealed))

	staged, err := a.Inbox().List(ctx)
	require.NoError(t, err)
	require.Len(t, staged, 1)
	require.Equal(t, "did:stranger", staged[0].Origin)
	require.Equal(t, schema.CredentialOfferMsgType, staged[0].Type)
}

func TestAgent_Start(t *testing.T) {
	t.Run("consumes endpoint queue", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		deliveries := make(chan amqp.Delivery)
		lis := &amqpmocks.Listener{}
		lis.On("Listen").Return((<-chan amqp.Delivery)(deliveries), nil)
		lis.On("Close").Return(nil)

		var queue string
		cfg := agentConfig()
		cfg.JanitorInterval = time.Hour
		a, err := New(ctx, cfg, ledgerConfig(), memory.NewProvider(), &trmocks.Outbound{},
			func(q string) (cxamqp.Listener, error) {
				queue = q
				return lis, nil
			})
		require.NoError(t, err)

		require.NoError(t, a.Start(ctx))
		require.Equal(t, transport.QueueName("did:issuer-endpoint"), queue)
		lis.AssertCalled(t, "Listen")
	})

	t.Run("listener failure", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		a, err := New(ctx, agentConfig(), ledgerConfig(), memory.NewProvider(), &trmocks.Outbound{},
			func(string) (cxamqp.Listener, error) {
				return nil, errors.New("connection refused")
			})
		require.NoError(t, err)

		err = a.Start(ctx)
		require.Error(t, err)
		require.Contains(t, err.Error(), "connection refused")
	})
}

func TestAgent_Notifications(t *testing.T) {
	ctx := context.Background()
	n := &nmocks.Notifier{}
	n.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return()

	a, err := New(ctx, agentConfig(), ledgerConfig(), memory.NewProvider(), &trmocks.Outbound{}, nil, WithNotifier(n))
	require.NoError(t, err)

	_, err = a.CredentialExchange().SendOffer(ctx, credential.SelfDID, a.CredDefIDs()[0], `{"name":"Alice","age":"30"}`)
	require.NoError(t, err)
	n.AssertCalled(t, "Notify", mock.Anything, notifier.TopicCredentials, "stored", mock.Anything)

	_, err = a.ProofExchange().SendRequest(ctx, credential.SelfDID,
		`{"name":"CD1-Proof","version":"0.1","requested_attributes":{"attr1_referent":{"name":"age"}},"requested_predicates":{}}`)
	require.NoError(t, err)
	n.AssertCalled(t, "Notify", mock.Anything, notifier.TopicProofs, "verified", mock.Anything)
	n.AssertCalled(t, "Notify", mock.Anything, notifier.TopicMessages, "staged", mock.Anything)
}

func TestAgent_StartWithWebhooks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := agentConfig()
	cfg.Webhooks = []*framework.Webhook{{Topic: notifier.TopicProofs, URL: "http://localhost:1/hook"}}

	queues := make(chan string, 2)
	a, err := New(ctx, cfg, ledgerConfig(), memory.NewProvider(), &trmocks.Outbound{},
		func(q string) (cxamqp.Listener, error) {
			lis := &amqpmocks.Listener{}
			lis.On("Listen").Return((<-chan amqp.Delivery)(make(chan amqp.Delivery)), nil)
			lis.On("Close").Return(nil)
			queues <- q
			return lis, nil
		})
	require.NoError(t, err)

	require.NoError(t, a.Start(ctx))
	require.Equal(t, transport.QueueName("did:issuer-endpoint"), <-queues)
	require.Equal(t, notifier.QueueName("did:issuer-endpoint"), <-queues)
}
