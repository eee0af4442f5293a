// Package loader bulk-loads fact files into a fact store at startup.
//
// The loader is the only writer the store ever sees: it scans a single
// directory for .sku and .yaml files, parses each into (subject,
// relation, object) triples, and feeds valid triples to the sink.
// Parse failures are diagnostics, not errors — a bad line is logged
// with its file and line number and the load continues.
package loader
