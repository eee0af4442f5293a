package factstore

import (
	"fmt"
	"sync"
)

// Fact is a single directed assertion: Subject --Relation--> Object.
type Fact struct {
	Subject  string `json:"subject"`
	Relation string `json:"relation"`
	Object   string `json:"object"`
}

// String renders the fact as a plain-text line for display output.
func (f Fact) String() string {
	return fmt.Sprintf("%s %s %s", f.Subject, f.Relation, f.Object)
}

// Stats holds aggregate counts for a store.
type Stats struct {
	FactCount     int `json:"fact_count"`
	NodeCount     int `json:"node_count"`
	RelationCount int `json:"relation_count"`
}

// Store is an in-memory directed labeled multigraph of facts.
//
// Nodes exist implicitly: any string that has appeared as a subject or
// object of at least one fact. The store keeps a mirrored pair of
// adjacency indexes (outgoing and incoming, each keyed by node then
// relation) so both query directions are a direct lookup; the indexes
// are updated together on every AddFact.
//
// Duplicate triples are preserved as distinct edges: ListFacts counts
// them separately and queries return the target once per stored edge.
//
// The intended lifecycle is a single-writer load phase followed by
// read-only queries. The mutex makes concurrent readers safe when the
// store is served over HTTP.
type Store struct {
	mu       sync.RWMutex
	facts    []Fact
	outgoing map[string]map[string][]string
	incoming map[string]map[string][]string
	nodes    map[string]struct{}
}

// NewStore creates an empty fact store.
func NewStore() *Store {
	return &Store{
		outgoing: make(map[string]map[string][]string),
		incoming: make(map[string]map[string][]string),
		nodes:    make(map[string]struct{}),
	}
}

// AddFact inserts the directed edge subject --relation--> object.
// Both endpoints are registered as nodes; registering an existing node
// is a no-op. Field validation (non-empty strings) is the caller's
// responsibility.
func (s *Store) AddFact(subject, relation, object string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.facts = append(s.facts, Fact{Subject: subject, Relation: relation, Object: object})
	s.nodes[subject] = struct{}{}
	s.nodes[object] = struct{}{}
	addEdge(s.outgoing, subject, relation, object)
	addEdge(s.incoming, object, relation, subject)
}

func addEdge(index map[string]map[string][]string, node, relation, target string) {
	byRelation, ok := index[node]
	if !ok {
		byRelation = make(map[string][]string)
		index[node] = byRelation
	}
	byRelation[relation] = append(byRelation[relation], target)
}

// QueryForward returns every object o such that (subject, relation, o)
// was added, in insertion order. An unknown subject or a relation with
// no matches yields an empty result, never an error.
func (s *Store) QueryForward(subject, relation string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lookup(s.outgoing, subject, relation)
}

// QueryReverse returns every subject s such that (s, relation, object)
// was added, in insertion order. Symmetric to QueryForward over the
// incoming index.
func (s *Store) QueryReverse(object, relation string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lookup(s.incoming, object, relation)
}

func lookup(index map[string]map[string][]string, node, relation string) []string {
	byRelation, ok := index[node]
	if !ok {
		return []string{}
	}
	targets, ok := byRelation[relation]
	if !ok {
		return []string{}
	}
	// Copy so callers cannot alias the index slice.
	out := make([]string, len(targets))
	copy(out, targets)
	return out
}

// ListFacts returns every stored fact in insertion order, duplicates
// included.
func (s *Store) ListFacts() []Fact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Fact, len(s.facts))
	copy(out, s.facts)
	return out
}

// Stats returns aggregate counts over the current contents.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	relations := make(map[string]struct{})
	for _, f := range s.facts {
		relations[f.Relation] = struct{}{}
	}
	return Stats{
		FactCount:     len(s.facts),
		NodeCount:     len(s.nodes),
		RelationCount: len(relations),
	}
}
