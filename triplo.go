package triplo

import (
	"log/slog"

	"github.com/soundprediction/triplo/pkg/factstore"
	"github.com/soundprediction/triplo/pkg/loader"
	"github.com/soundprediction/triplo/pkg/query"
)

// Client bundles the fact store, its loader, and the query adapter
// behind a single handle. The process entry point constructs one Client
// and passes it by reference to whatever serves queries; there is no
// package-level store.
type Client struct {
	store   *factstore.Store
	loader  *loader.Loader
	adapter *query.Adapter
	logger  *slog.Logger
}

// NewClient creates a client over store. A nil store gets a fresh empty
// one; a nil logger falls back to slog.Default().
func NewClient(store *factstore.Store, logger *slog.Logger) *Client {
	if store == nil {
		store = factstore.NewStore()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		store:   store,
		loader:  loader.New(store, logger),
		adapter: query.NewAdapter(store),
		logger:  logger,
	}
}

// Store returns the underlying fact store.
func (c *Client) Store() *factstore.Store {
	return c.store
}

// LoadDirectory bulk-loads every recognized fact file under dir.
func (c *Client) LoadDirectory(dir string) loader.Result {
	return c.loader.LoadDirectory(dir)
}

// AddFact inserts a single fact.
func (c *Client) AddFact(subject, relation, object string) {
	c.store.AddFact(subject, relation, object)
}

// QueryForward returns the objects of all (subject, relation, *) facts.
func (c *Client) QueryForward(subject, relation string) []string {
	return c.store.QueryForward(subject, relation)
}

// QueryReverse returns the subjects of all (*, relation, object) facts.
func (c *Client) QueryReverse(object, relation string) []string {
	return c.store.QueryReverse(object, relation)
}

// ListFacts returns every stored fact in insertion order.
func (c *Client) ListFacts() []factstore.Fact {
	return c.store.ListFacts()
}

// Stats returns aggregate store counts.
func (c *Client) Stats() factstore.Stats {
	return c.store.Stats()
}

// ProcessJSON runs one raw JSON query through the query adapter and
// returns the JSON result document.
func (c *Client) ProcessJSON(raw []byte) []byte {
	return c.adapter.ProcessJSON(raw)
}
