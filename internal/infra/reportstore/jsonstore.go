// Package reportstore persists validation reports as JSON files for CI
// artifacts and later browsing.
package reportstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/domain"
	"github.com/IgorGanapolsky/ai-kindlemint-engine-sub001/internal/ports"
)

const defaultReportsDir = "reports"

type JSONStore struct {
	rootDir        string
	reportsDirName string
	writeIndex     bool
	now            func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: reports/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.ReportsDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultReportsDir
	}

	s := &JSONStore{
		rootDir:        root,
		reportsDirName: dir,
		writeIndex:     false,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

func (s *JSONStore) SaveBatch(report domain.BatchReport) (string, error) {
	slug := slugify(string(report.PuzzleType))
	if slug == "" {
		slug = "batch"
	}
	return s.save(slug, report.StartedAt, report.ValidationPassed, string(report.PuzzleType), report)
}

func (s *JSONStore) SavePDF(report domain.PDFReport) (string, error) {
	slug := slugify(strings.TrimSuffix(filepath.Base(report.Path), filepath.Ext(report.Path)))
	if slug == "" {
		slug = "pdf"
	}
	return s.save("pdf-"+slug, report.StartedAt, report.ValidationPassed, "pdf", report)
}

func (s *JSONStore) save(slug string, startedAt time.Time, passed bool, kind string, payload any) (string, error) {
	dir := filepath.Join(s.rootDir, s.reportsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := startedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), slug)
	id := strings.TrimSuffix(filename, ".json")
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "reportstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "reportstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, kind, ts, passed)
	}

	return id, nil
}

// Ref is one saved report as listed by the index or directory scan.
type Ref struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Kind      string    `json:"kind"`
	StartedAt time.Time `json:"started_at"`
	Passed    bool      `json:"passed"`
}

func (s *JSONStore) appendIndex(dir, id, filename, kind string, startedAt time.Time, passed bool) error {
	line, err := json.Marshal(Ref{
		ID:        id,
		File:      filename,
		Kind:      kind,
		StartedAt: startedAt,
		Passed:    passed,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// List returns the saved reports, newest first. It scans the directory
// rather than trusting the optional index.
func (s *JSONStore) List() ([]Ref, error) {
	dir := filepath.Join(s.rootDir, s.reportsDirName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Ref{}, nil
		}
		return nil, &domain.OpError{
			Op:   "reportstore.list",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	var refs []Ref
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		id := strings.TrimSuffix(name, ".json")

		ref := Ref{ID: id, File: name}
		if i := strings.IndexByte(id, '_'); i > 0 {
			if ts, perr := time.Parse("20060102T150405Z", id[:i]); perr == nil {
				ref.StartedAt = ts
			}
			ref.Kind = id[i+1:]
			if strings.HasPrefix(ref.Kind, "pdf-") {
				ref.Kind = "pdf"
			}
		}
		refs = append(refs, ref)
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].ID > refs[j].ID })
	return refs, nil
}

// LoadRaw returns the raw JSON of a saved report by id.
func (s *JSONStore) LoadRaw(id string) ([]byte, error) {
	path := filepath.Join(s.rootDir, s.reportsDirName, id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "reportstore.loadraw",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  fmt.Errorf("%w: %w", domain.ErrNotFound, err),
		}
	}
	return b, nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			lastDash = false
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
