// Package triplo provides an in-memory knowledge graph of (subject,
// relation, object) facts with forward and reverse lookup.
//
// Facts are directed labeled edges: subject --relation--> object. The
// store is bulk-loaded from flat fact files at startup and read-only
// afterward; queries never fail, they return empty results for unknown
// nodes and unmatched relations.
//
// # Basic Usage
//
//	log := logger.NewDefaultLogger(slog.LevelInfo)
//	client := triplo.NewClient(nil, log)
//
//	client.LoadDirectory("./SKUs")
//
//	client.AddFact("Hypertension", "treated_by", "ACE Inhibitor")
//
//	objects := client.QueryForward("Hypertension", "treated_by")
//	subjects := client.QueryReverse("ACE Inhibitor", "treated_by")
//
// # Structured Queries
//
// The query adapter accepts JSON documents and always answers with
// JSON, reporting bad input as error documents rather than failures:
//
//	out := client.ProcessJSON([]byte(`{
//	    "queryType": "retrieve_fact",
//	    "subject": "Hypertension",
//	    "relation": "treated_by"
//	}`))
//	// {"response":["ACE Inhibitor"]}
//
// The same adapter backs the triplo CLI, its interactive query loop,
// and the HTTP server in pkg/server.
//
// # Fact Files
//
// The loader (pkg/loader) reads .sku files of one tuple literal per
// line:
//
//	("Hypertension", "treated_by", "ACE Inhibitor")
//
// and .yaml files holding a list of {subject, relation, object}
// mappings. Malformed lines are logged and skipped; a load pass never
// aborts.
package triplo
