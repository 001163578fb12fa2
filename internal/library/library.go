// Package library loads bibliographic entries from files on disk.
//
// Two kinds of input are understood: BibTeX databases (.bib) and record
// files (.yaml, .yml, .json) holding a list of entries with their fields.
// Entry type and field names are normalised through the bib package, and
// fields without a value are dropped on load.
package library

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/Kaan0029/jabref/internal/bib"
	"github.com/Kaan0029/jabref/internal/errors"
	"github.com/Kaan0029/jabref/internal/logger"
)

// Format identifies a supported input format
type Format string

const (
	FormatBibTeX Format = "bibtex"
	FormatYAML   Format = "yaml"
	FormatJSON   Format = "json"
)

// maxFileSize bounds the size of a single input file (64 MiB)
const maxFileSize = 64 << 20

// DefaultCacheTTL is how long parsed files stay cached
const DefaultCacheTTL = 10 * time.Minute

// DetectFormat derives the input format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bib", ".bibtex":
		return FormatBibTeX, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Newf("unsupported input file extension %q", filepath.Ext(path)).
			Component("library").
			Category(errors.CategoryValidation).
			Context("file_extension", strings.ToLower(filepath.Ext(path))).
			Build()
	}
}

// Loader reads entries from files on a filesystem. Parsed files are cached
// by path, size and modification time, so a long-lived Loader that reads an
// unchanged file again skips parsing. A single LoadAll call never hits the
// cache for a path; use WithDedupe to collapse repeated paths there.
type Loader struct {
	fs       afero.Fs
	log      logger.Logger
	cache    *cache.Cache
	cacheTTL time.Duration
	dedupe   bool
}

// Option configures a Loader
type Option func(*Loader)

// WithCacheTTL sets how long parsed files are cached. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(l *Loader) {
		l.cacheTTL = ttl
	}
}

// WithDedupe makes LoadAll read a path that is listed more than once only
// the first time.
func WithDedupe(enabled bool) Option {
	return func(l *Loader) {
		l.dedupe = enabled
	}
}

// NewLoader returns a loader reading from fs. A nil fs means the OS filesystem.
func NewLoader(fs afero.Fs, opts ...Option) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	l := &Loader{fs: fs, log: GetLogger(), cacheTTL: DefaultCacheTTL}
	for _, opt := range opts {
		opt(l)
	}
	if l.cacheTTL > 0 {
		l.cache = cache.New(l.cacheTTL, 2*l.cacheTTL)
	}
	return l
}

// cacheKey identifies one version of a file
func cacheKey(path string, info os.FileInfo) string {
	return fmt.Sprintf("%s|%d|%d", filepath.Clean(path), info.Size(), info.ModTime().UnixNano())
}

// cloneEntries copies cached entries so callers never share them
func cloneEntries(entries []*bib.Entry) []*bib.Entry {
	out := make([]*bib.Entry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}

// Load reads every entry from the file at path.
func (l *Loader) Load(path string) ([]*bib.Entry, error) {
	start := time.Now()

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	info, err := l.fs.Stat(path)
	if err != nil {
		return nil, errors.FileError("library", fmt.Errorf("cannot access %s: %w", path, err), path, 0)
	}
	if info.IsDir() {
		return nil, errors.Newf("%s is a directory", path).
			Component("library").
			Category(errors.CategoryValidation).
			FileContext(path, 0).
			Build()
	}
	if info.Size() > maxFileSize {
		return nil, errors.Newf("%s exceeds the maximum input size of %d bytes", path, maxFileSize).
			Component("library").
			Category(errors.CategoryValidation).
			FileContext(path, info.Size()).
			Build()
	}

	key := cacheKey(path, info)
	if l.cache != nil {
		if cached, found := l.cache.Get(key); found {
			entries := cloneEntries(cached.([]*bib.Entry))
			l.log.Debug("library served from cache",
				logger.String("path", path),
				logger.Int("entries", len(entries)))
			return entries, nil
		}
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, errors.FileError("library", fmt.Errorf("failed to read %s: %w", path, err), path, info.Size())
	}

	var entries []*bib.Entry
	switch format {
	case FormatBibTeX:
		entries, err = ParseBibTeX(bytes.NewReader(data))
	case FormatJSON:
		entries, err = ParseJSONRecords(bytes.NewReader(data))
	default:
		entries, err = ParseRecords(bytes.NewReader(data))
	}
	if err != nil {
		return nil, errors.New(fmt.Errorf("failed to parse %s: %w", path, err)).
			Component("library").
			Category(errors.CategoryFileParsing).
			FileContext(path, info.Size()).
			Context("format", string(format)).
			Build()
	}

	if l.cache != nil {
		l.cache.Set(key, cloneEntries(entries), cache.DefaultExpiration)
	}

	l.log.Debug("library loaded",
		logger.String("path", path),
		logger.String("format", string(format)),
		logger.Int("entries", len(entries)),
		logger.Duration("elapsed", time.Since(start)))

	return entries, nil
}

// LoadAll loads every path and concatenates the entries in the order the
// paths are given. Files are read concurrently. If any file fails, the error
// of the first failing path in list order is returned.
func (l *Loader) LoadAll(paths []string) ([]*bib.Entry, error) {
	if len(paths) == 0 {
		return nil, errors.ValidationError("no input files given")
	}

	if l.dedupe {
		paths = l.dedupePaths(paths)
	}

	results := make([][]*bib.Entry, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			results[i], errs[i] = l.Load(path)
			return errs[i]
		})
	}
	_ = g.Wait()

	total := 0
	for i := range paths {
		if errs[i] != nil {
			return nil, errs[i]
		}
		total += len(results[i])
	}

	all := make([]*bib.Entry, 0, total)
	for _, entries := range results {
		all = append(all, entries...)
	}
	return all, nil
}

// dedupePaths drops paths that name an already listed file
func (l *Loader) dedupePaths(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	unique := make([]string, 0, len(paths))
	for _, path := range paths {
		clean := filepath.Clean(path)
		if _, dup := seen[clean]; dup {
			l.log.Info("skipping input listed more than once", logger.String("path", path))
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, path)
	}
	return unique
}
