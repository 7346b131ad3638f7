package notifier

import (
	"context"

	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/indy"
	"github.com/scoir/canis-exchange/pkg/schema"
)

// Inbox reports every staged message on TopicMessages.
func Inbox(inner datastore.Inbox, n Notifier) datastore.Inbox {
	return &inbox{Inbox: inner, n: n}
}

type inbox struct {
	datastore.Inbox
	n Notifier
}

func (r *inbox) Stage(ctx context.Context, m *datastore.Message) (string, error) {
	id, err := r.Inbox.Stage(ctx, m)
	if err != nil {
		return "", err
	}

	r.n.Notify(ctx, TopicMessages, "staged", map[string]interface{}{
		"id":     id,
		"origin": m.Origin,
		"type":   m.Type,
	})

	return id, nil
}

// Directory reports every stored proof on TopicProofs.
func Directory(inner datastore.Directory, n Notifier) datastore.Directory {
	return &directory{Directory: inner, n: n}
}

type directory struct {
	datastore.Directory
	n Notifier
}

func (r *directory) AddProof(ctx context.Context, p *datastore.Proof) (string, error) {
	id, err := r.Directory.AddProof(ctx, p)
	if err != nil {
		return "", err
	}

	r.n.Notify(ctx, TopicProofs, "verified", map[string]interface{}{
		"id":        id,
		"their_did": p.TheirDID,
	})

	return id, nil
}

// Wallet reports every stored credential on TopicCredentials.
func Wallet(inner indy.Wallet, n Notifier) indy.Wallet {
	return &wallet{Wallet: inner, n: n}
}

type wallet struct {
	indy.Wallet
	n Notifier
}

func (r *wallet) StoreCredential(ctx context.Context, meta *schema.IndyCredentialRequestMetadata, cred *schema.IndyCredential,
	credDef *schema.CredentialDefinition) (string, error) {

	referent, err := r.Wallet.StoreCredential(ctx, meta, cred, credDef)
	if err != nil {
		return "", err
	}

	r.n.Notify(ctx, TopicCredentials, "stored", map[string]interface{}{
		"referent":    referent,
		"cred_def_id": cred.CredDefID,
		"schema_id":   cred.SchemaID,
	})

	return referent, nil
}
