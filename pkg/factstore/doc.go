// Package factstore provides the in-memory fact store at the core of triplo.
//
// A fact is a (subject, relation, object) triple treated as a directed
// labeled edge. The store answers adjacency queries in both directions:
//
//	store := factstore.NewStore()
//	store.AddFact("Hypertension", "treated_by", "ACE Inhibitor")
//	store.AddFact("Hypertension", "treated_by", "Diuretic")
//
//	store.QueryForward("Hypertension", "treated_by")
//	// ["ACE Inhibitor", "Diuretic"]
//
//	store.QueryReverse("ACE Inhibitor", "treated_by")
//	// ["Hypertension"]
//
// Absence of data is an empty result, never an error: querying a node
// the store has never seen returns an empty slice. Result order is
// insertion order of the matching facts and is stable across repeated
// calls on an unmodified store.
//
// The store has no delete operation. It is populated during a load
// phase (see package loader) and read-only afterward.
package factstore
