package loader

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FactSink is the write side of the fact store consumed by the loader.
type FactSink interface {
	AddFact(subject, relation, object string)
}

// Result summarizes one load pass, for load-phase logging.
type Result struct {
	Files   int // files read
	Facts   int // facts added to the sink
	Skipped int // malformed lines or entries skipped
}

// Loader reads fact files from a directory into a FactSink.
//
// Two formats are recognized by extension (case-insensitive):
//
//	.sku   one tuple literal per line, e.g. ("A", "treats", "B")
//	.yaml  a YAML list of {subject, relation, object} mappings
//
// Everything else in the directory is ignored. Malformed lines and
// entries are logged and skipped; an unreadable file is logged and
// skipped; a missing directory is logged and skipped. A load pass never
// returns an error.
type Loader struct {
	sink   FactSink
	logger *slog.Logger
}

// New creates a loader writing into sink. A nil logger falls back to
// slog.Default().
func New(sink FactSink, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{sink: sink, logger: logger}
}

// yamlFact is one entry of a .yaml fact file.
type yamlFact struct {
	Subject  string `yaml:"subject"`
	Relation string `yaml:"relation"`
	Object   string `yaml:"object"`
}

// LoadDirectory loads every recognized fact file directly under dir.
func (l *Loader) LoadDirectory(dir string) Result {
	var res Result

	entries, err := os.ReadDir(dir)
	if err != nil {
		l.logger.Warn("fact directory not readable, skipping import", "dir", dir, "error", err)
		return res
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".sku":
			l.loadSKUFile(path, &res)
		case ".yaml", ".yml":
			l.loadYAMLFile(path, &res)
		}
	}

	l.logger.Info("fact load complete",
		"dir", dir, "files", res.Files, "facts", res.Facts, "skipped", res.Skipped)
	return res
}

// loadSKUFile reads one tuple-per-line fact file.
func (l *Loader) loadSKUFile(path string, res *Result) {
	f, err := os.Open(path)
	if err != nil {
		l.logger.Warn("could not read fact file", "file", path, "error", err)
		return
	}
	defer f.Close()
	res.Files++

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fact, err := ParseTupleLine(line)
		if err != nil {
			l.logger.Warn("skipping malformed fact line",
				"file", path, "line", lineNo, "error", err)
			res.Skipped++
			continue
		}
		l.sink.AddFact(fact.Subject, fact.Relation, fact.Object)
		res.Facts++
	}
	if err := scanner.Err(); err != nil {
		l.logger.Warn("error reading fact file", "file", path, "error", err)
	}
}

// loadYAMLFile reads a YAML list of fact mappings.
func (l *Loader) loadYAMLFile(path string, res *Result) {
	raw, err := os.ReadFile(path)
	if err != nil {
		l.logger.Warn("could not read fact file", "file", path, "error", err)
		return
	}
	res.Files++

	var facts []yamlFact
	if err := yaml.Unmarshal(raw, &facts); err != nil {
		l.logger.Warn("skipping unparsable YAML fact file", "file", path, "error", err)
		return
	}

	for i, f := range facts {
		if err := validate(f); err != nil {
			l.logger.Warn("skipping invalid fact entry", "file", path, "entry", i, "error", err)
			res.Skipped++
			continue
		}
		l.sink.AddFact(f.Subject, f.Relation, f.Object)
		res.Facts++
	}
}

func validate(f yamlFact) error {
	if f.Subject == "" {
		return fmt.Errorf("subject is empty")
	}
	if f.Relation == "" {
		return fmt.Errorf("relation is empty")
	}
	if f.Object == "" {
		return fmt.Errorf("object is empty")
	}
	return nil
}
