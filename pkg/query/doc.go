// Package query implements the structured query adapter for the fact
// store.
//
// The adapter accepts JSON documents with a queryType discriminator:
//
//	{"queryType": "retrieve_fact", "subject": "Hypertension", "relation": "treated_by"}
//	{"queryType": "retrieve_fact_reverse", "object": "ACE Inhibitor", "relation": "treated_by"}
//
// and answers with either {"response": [...]} or {"error": ..., "details": ...}.
// Malformed input, missing required fields, and unknown query types are
// all reported as error documents; no query can fail the process.
package query
