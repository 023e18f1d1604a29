package registry

import (
	"os"
	"path/filepath"

	"barrel/core/config"
	"barrel/core/generator"
	"barrel/core/logger"
	"barrel/core/models"
	"barrel/core/scanner"
)

// Registry owns the last-known set of matched component paths and decides
// whether the barrel file needs regenerating. It is driven synchronously by
// the host lifecycle and is not safe for concurrent use; the lifecycle
// never invokes it from more than one goroutine.
type Registry struct {
	cfg    config.Config
	base   string // resolved absolute base directory
	output string // resolved absolute output path
	log    logger.Logger

	// keys is replaced wholesale on every successful scan, never mutated
	// incrementally.
	keys []string
}

// New resolves the config's base and output against workDir and returns a
// Registry with an empty key set.
func New(cfg config.Config, workDir string, log logger.Logger) *Registry {
	base := cfg.Base
	if !filepath.IsAbs(base) {
		base = filepath.Join(workDir, base)
	}
	output := cfg.Output
	if !filepath.IsAbs(output) {
		output = filepath.Join(base, output)
	}

	return &Registry{
		cfg:    cfg,
		base:   base,
		output: output,
		log:    logger.OrNop(log),
	}
}

// Base returns the resolved base directory.
func (r *Registry) Base() string { return r.base }

// Output returns the resolved output path.
func (r *Registry) Output() string { return r.output }

// Keys returns a copy of the last-known matched paths.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// InitialScan populates the key set from a full scan of the base directory
// and writes the barrel file. The output path must already exist; refusing
// to create it guards against generating into an unintended location.
func (r *Registry) InitialScan() ([]models.ComponentEntry, error) {
	return r.rescan()
}

// Regenerate behaves exactly like InitialScan: full rescan, wholesale key
// replacement, write. Idempotent on an unchanged tree.
func (r *Registry) Regenerate() ([]models.ComponentEntry, error) {
	return r.rescan()
}

func (r *Registry) rescan() ([]models.ComponentEntry, error) {
	if _, err := os.Stat(r.base); err != nil {
		nf := &NotFoundError{Path: r.base, Err: err}
		r.log.Error("Base directory inaccessible: %v", nf)
		return nil, nf
	}
	if _, err := os.Stat(r.output); err != nil {
		nf := &NotFoundError{Path: r.output, Err: err}
		r.log.Error("Output path inaccessible: %v", nf)
		return nil, nf
	}

	matches, err := scanner.Scan(r.base, r.cfg.Recursive, r.cfg.Pattern)
	if err != nil {
		r.log.Error("Scan failed: %v", err)
		return nil, err
	}

	prev := r.keys
	r.keys = matches

	entries := make([]models.ComponentEntry, 0, len(matches))
	for _, m := range matches {
		entry := models.NewComponentEntry(m)
		entries = append(entries, entry)
		r.log.Trace("Matched component %s -> %s", entry.ComponentName, entry.ImportSpecifier)
	}

	if err := generator.WriteFile(r.output, r.cfg.Header, entries); err != nil {
		// Roll back so the next DetectChanges compares against what the
		// barrel on disk actually reflects.
		r.keys = prev
		we := &WriteError{Path: r.output, Err: err}
		r.log.Error("Write failed: %v", we)
		return nil, we
	}

	r.log.Info("Generated %s with %d components", r.output, len(entries))
	return entries, nil
}

// DetectChanges reports whether the component set on disk differs from the
// last-known keys. Two phases: a cheap existence check over the known keys
// catches deletions; only when that finds nothing does a full rescan run to
// catch additions. Neither phase mutates keys or writes output.
func (r *Registry) DetectChanges() (bool, []string, error) {
	changed := false
	for _, key := range r.keys {
		if _, err := os.Stat(key); err != nil {
			r.log.Debug("Component removed: %s", key)
			changed = true
		}
	}

	if !changed {
		matches, err := scanner.Scan(r.base, r.cfg.Recursive, r.cfg.Pattern)
		if err != nil {
			return false, r.Keys(), err
		}
		if !multisetEqual(r.keys, matches) {
			r.log.Debug("Component set changed: %d known, %d on disk", len(r.keys), len(matches))
			changed = true
		}
	}

	return changed, r.Keys(), nil
}

// multisetEqual compares two path lists as bags: same elements with the
// same multiplicities, order ignored.
func multisetEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, p := range a {
		counts[p]++
	}
	for _, p := range b {
		counts[p]--
		if counts[p] < 0 {
			return false
		}
	}
	return true
}
