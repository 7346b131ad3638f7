package credential

import (
	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/indy"
	"github.com/scoir/canis-exchange/pkg/pending"
	"github.com/scoir/canis-exchange/pkg/transport"
)

type Provider interface {
	Wallet() indy.Wallet
	Ledger() indy.Ledger
	Directory() datastore.Directory
	Routes() *transport.Routes
	Correlator() *pending.Correlator
}
