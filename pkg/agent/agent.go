/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package agent assembles one canis-exchange agent from configuration.
package agent

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/scoir/canis-exchange/pkg/amqp"
	"github.com/scoir/canis-exchange/pkg/apiserver"
	"github.com/scoir/canis-exchange/pkg/credential"
	"github.com/scoir/canis-exchange/pkg/crypto"
	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/didcomm"
	"github.com/scoir/canis-exchange/pkg/framework"
	"github.com/scoir/canis-exchange/pkg/indy"
	"github.com/scoir/canis-exchange/pkg/notifier"
	"github.com/scoir/canis-exchange/pkg/pending"
	"github.com/scoir/canis-exchange/pkg/presentproof"
	"github.com/scoir/canis-exchange/pkg/transport"
	"github.com/scoir/canis-exchange/pkg/ursa"
)

var logger = logrus.WithField("module", "agent")

const defaultJanitorInterval = time.Minute

type Agent struct {
	cfg      *framework.AgentConfig
	ledger   *framework.Ledger
	oracle   indy.Oracle
	keys     *crypto.Keyring
	dir      datastore.Directory
	inbox    datastore.Inbox
	pend     *pending.Correlator
	crypto   *transport.Crypto
	routes   *transport.Routes
	creds    *credential.Exchange
	proofs   *presentproof.Exchange
	router   *didcomm.Router
	listener func(queue string) (amqp.Listener, error)
	notes    notifier.Notifier
}

type Option func(opts *Agent)

// WithNotifier reports staged messages, stored credentials and verified proofs to n.
func WithNotifier(n notifier.Notifier) Option {
	return func(opts *Agent) {
		opts.notes = n
	}
}

//go:generate mockery -name=provider --structname=Provider
type provider interface {
	AgentConfig() (*framework.AgentConfig, error)
	LedgerConfig() (*framework.LedgerConfig, error)
	Datastore() (datastore.Provider, error)
	Publisher() (amqp.Publisher, error)
	Listener(queue string) (amqp.Listener, error)
}

func NewAgent(ctx context.Context, p provider) (*Agent, error) {
	cfg, err := p.AgentConfig()
	if err != nil {
		return nil, errors.Wrap(err, "unable to load agent config")
	}

	pub, err := p.Publisher()
	if err != nil {
		return nil, errors.Wrap(err, "unable to create outbound transport for agent")
	}

	ds, err := p.Datastore()
	if err != nil {
		return nil, errors.Wrap(err, "unable to access datastore")
	}

	lc, err := p.LedgerConfig()
	if err != nil {
		return nil, err
	}

	var opts []Option
	if len(cfg.Webhooks) > 0 {
		opts = append(opts, WithNotifier(notifier.NewEmitter(pub, cfg.EndpointDID)))
	}

	return New(ctx, cfg, lc, ds, transport.NewAMQPOutbound(pub), p.Listener, opts...)
}

// New builds an agent that delivers through out. Listen is only used by Start.
func New(ctx context.Context, cfg *framework.AgentConfig, lc *framework.LedgerConfig, ds datastore.Provider,
	out transport.Outbound, listen func(queue string) (amqp.Listener, error), opts ...Option) (*Agent, error) {

	r := &Agent{
		cfg:      cfg,
		oracle:   ursa.NewOracle(),
		keys:     crypto.NewKeyring(),
		listener: listen,
	}

	for _, opt := range opts {
		opt(r)
	}

	var err error
	r.dir, err = ds.Directory()
	if err != nil {
		return nil, errors.Wrap(err, "unable to open directory")
	}

	r.inbox, err = ds.Inbox()
	if err != nil {
		return nil, errors.Wrap(err, "unable to open inbox")
	}

	store, err := ds.PendingStore()
	if err != nil {
		return nil, errors.Wrap(err, "unable to open pending store")
	}

	err = r.bootstrap(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "error bootstrapping agent")
	}

	r.ledger, err = lc.Open(ctx, cfg.EndpointDID, r.oracle)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open ledger")
	}

	if r.notes != nil {
		r.dir = notifier.Directory(r.dir, r.notes)
		r.inbox = notifier.Inbox(r.inbox, r.notes)
		r.ledger.Wallet = notifier.Wallet(r.ledger.Wallet, r.notes)
	}

	var popts []pending.Option
	if cfg.PendingTTL > 0 {
		popts = append(popts, pending.WithTTL(cfg.PendingTTL))
	}

	loop := transport.NewLoopback()
	r.pend = pending.NewCorrelator(store, popts...)
	r.crypto = transport.NewCrypto(r.keys, r.dir, out, cfg.EndpointDID)
	r.routes = transport.NewRoutes(r.dir, r.crypto, loop)
	r.creds = credential.New(r)
	r.proofs = presentproof.New(r)
	r.router = didcomm.NewRouter(r, didcomm.WithAutoAccept(cfg.AutoAccept))
	loop.Attach(r.router)

	return r, nil
}

// bootstrap loads the endpoint key and the configured relationships into the keyring and directory.
func (r *Agent) bootstrap(ctx context.Context) error {
	err := r.addKey(r.cfg.EndpointDID, r.cfg.EndpointSeed)
	if err != nil {
		return err
	}

	err = r.dir.SetEndpointDID(ctx, r.cfg.EndpointDID)
	if err != nil {
		return errors.Wrap(err, "unable to save endpoint DID")
	}

	for _, rel := range r.cfg.Relationships {
		err = r.addKey(rel.MyDID, rel.MySeed)
		if err != nil {
			return err
		}

		err = r.dir.AddPairwise(ctx, &datastore.Pairwise{
			TheirDID:            rel.TheirDID,
			MyDID:               rel.MyDID,
			TheirVerKey:         rel.TheirVerKey,
			TheirEndpointDID:    rel.TheirEndpointDID,
			TheirEndpointVerKey: rel.TheirEndpointVerKey,
		})
		if err != nil {
			return errors.Wrapf(err, "unable to add relationship with %s", rel.TheirDID)
		}
	}

	return nil
}

func (r *Agent) addKey(did, seed string) error {
	if seed == "" {
		verkey, err := r.keys.Create(did)
		if err != nil {
			return errors.Wrapf(err, "unable to create key for %s", did)
		}

		logger.WithField("did", did).WithField("verkey", verkey).Warn("no seed configured, using an ephemeral key")
		return nil
	}

	kp, err := crypto.KeyPairFromSeed(seed)
	if err != nil {
		return errors.Wrapf(err, "bad seed for %s", did)
	}

	r.keys.Add(did, kp)
	logger.WithField("did", did).WithField("verkey", kp.VerKey()).Info("loaded key")

	return nil
}

// Start runs the pending janitor and consumes the endpoint queue until ctx is done.
func (r *Agent) Start(ctx context.Context) error {
	interval := r.cfg.JanitorInterval
	if interval <= 0 {
		interval = defaultJanitorInterval
	}
	r.pend.Start(ctx, interval)

	if r.listener == nil {
		return errors.New("agent has no inbound transport")
	}

	queue := transport.QueueName(r.cfg.EndpointDID)
	l, err := r.listener(queue)
	if err != nil {
		return err
	}

	err = transport.NewInbound(l, r.crypto, r.router).Start(ctx)
	if err != nil {
		return errors.Wrapf(err, "unable to consume %s", queue)
	}

	logger.WithField("queue", queue).Info("agent listening")

	if len(r.cfg.Webhooks) == 0 {
		return nil
	}

	nl, err := r.listener(notifier.QueueName(r.cfg.EndpointDID))
	if err != nil {
		return err
	}

	go func() {
		err := notifier.New(r.cfg.Webhooks, nl, nil).Start(ctx)
		if err != nil {
			logger.WithError(err).Error("webhook notifier exited")
		}
	}()

	return nil
}

// Deliver hands a sealed message addressed to this agent's endpoint to the router.
func (r *Agent) Deliver(ctx context.Context, sealed []byte) error {
	env, err := r.crypto.Open(ctx, sealed)
	if err != nil {
		return err
	}

	return r.router.Handle(ctx, env)
}

func (r *Agent) EndpointDID() string {
	return r.cfg.EndpointDID
}

// CredDefIDs are the credential definitions published at startup.
func (r *Agent) CredDefIDs() []string {
	return r.ledger.CredDefIDs
}

func (r *Agent) Wallet() indy.Wallet {
	return r.ledger.Wallet
}

func (r *Agent) Ledger() indy.Ledger {
	return r.ledger.Ledger
}

func (r *Agent) Verifier() indy.Verifier {
	return r.ledger.Verifier
}

func (r *Agent) Oracle() indy.Oracle {
	return r.oracle
}

func (r *Agent) Directory() datastore.Directory {
	return r.dir
}

func (r *Agent) Inbox() datastore.Inbox {
	return r.inbox
}

func (r *Agent) Routes() *transport.Routes {
	return r.routes
}

func (r *Agent) Correlator() *pending.Correlator {
	return r.pend
}

func (r *Agent) Credentials() didcomm.CredentialHandler {
	return r.creds
}

func (r *Agent) Proofs() didcomm.ProofHandler {
	return r.proofs
}

func (r *Agent) CredentialExchange() *credential.Exchange {
	return r.creds
}

func (r *Agent) ProofExchange() *presentproof.Exchange {
	return r.proofs
}

func (r *Agent) Router() *didcomm.Router {
	return r.router
}

func (r *Agent) APICredentials() apiserver.CredentialExchange {
	return r.creds
}

func (r *Agent) APIProofs() apiserver.ProofExchange {
	return r.proofs
}

func (r *Agent) APIMessages() apiserver.MessageRouter {
	return r.router
}

func (r *Agent) APIPending() apiserver.PendingTracker {
	return r.pend
}
