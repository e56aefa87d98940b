// Package editorconfig resolves the effective kdocfmt formatting options for
// a source file by cascading .editorconfig files found in ancestor
// directories.
//
// The implementation follows a restricted subset of editorconfig semantics
// with one deliberate deviation: per-file-type properties (such as the
// Markdown comment width) never inherit from a generic [*] section. They
// must be set by a section that explicitly names the file type.
package editorconfig

import (
	"path/filepath"
	"sync"

	"github.com/yaklabco/kdocfmt/pkg/options"
)

// Resolution is the outcome of resolving a directory: either the governing
// node or an explicit "no config anywhere upward" result. The two cases are
// distinguished by Found, never by pointer identity.
type Resolution struct {
	Node  *Node
	Found bool
}

// Resolver owns the baseline options and the per-directory resolution cache.
// There are no package-level globals; callers construct one Resolver per
// logical run and pass it wherever resolution happens.
//
// Resolver is safe for concurrent use. The runner processes files with a
// worker pool, so cache population and baseline replacement are serialized
// with an internal mutex.
type Resolver struct {
	mu       sync.Mutex
	baseline options.Resolved
	dirs     map[string]Resolution
}

// NewResolver creates a resolver with the given baseline options.
func NewResolver(baseline options.Resolved) *Resolver {
	return &Resolver{
		baseline: baseline.Clone(),
		dirs:     make(map[string]Resolution),
	}
}

// Baseline returns a copy of the current baseline options.
func (r *Resolver) Baseline() options.Resolved {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.baseline.Clone()
}

// SetBaseline replaces the baseline and discards the entire cache. Any field
// in any cascade may transitively depend on the baseline, through root-level
// fallback or the "unset" sentinel, so nothing cached survives a baseline
// change.
func (r *Resolver) SetBaseline(baseline options.Resolved) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.baseline = baseline.Clone()
	r.dirs = make(map[string]Resolution)
}

// Resolve returns the governing config node for a directory, or a not-found
// resolution if no .editorconfig exists anywhere upward. Results are
// memoized per canonical directory: a miss back-fills every ancestor up to
// the filesystem root in one pass, and a hit maps every directory between
// the query directory and the governing file's directory to the same node.
func (r *Resolver) Resolve(dir string) (Resolution, error) {
	canon, err := canonicalDir(dir)
	if err != nil {
		return Resolution{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolveLocked(canon)
}

// resolveLocked walks upward recursively, populating the cache at every
// level. Callers hold r.mu.
func (r *Resolver) resolveLocked(dir string) (Resolution, error) {
	if res, ok := r.dirs[dir]; ok {
		return res, nil
	}

	if path, ok := configIn(dir); ok {
		node, err := r.buildLocked(path, dir)
		if err != nil {
			return Resolution{}, err
		}
		res := Resolution{Node: node, Found: true}
		r.dirs[dir] = res
		return res, nil
	}

	parent := filepath.Dir(dir)
	if parent == dir {
		// Filesystem root with no config anywhere.
		res := Resolution{}
		r.dirs[dir] = res
		return res, nil
	}

	res, err := r.resolveLocked(parent)
	if err != nil {
		return Resolution{}, err
	}
	r.dirs[dir] = res
	return res, nil
}

// buildLocked parses the config file at path and, unless it is a root file,
// chains it to the governing node of dir's parent directory.
func (r *Resolver) buildLocked(path, dir string) (*Node, error) {
	sections, root, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	var parent *Node
	if parentDir := filepath.Dir(dir); !root && parentDir != dir {
		parentRes, err := r.resolveLocked(parentDir)
		if err != nil {
			return nil, err
		}
		if parentRes.Found {
			parent = parentRes.Node
		}
	}

	return newNode(path, root, sections, parent), nil
}

// OptionsFor resolves the options in effect for a file. The returned value
// is independently owned and never aliases cached state. When no config
// governs the file, the baseline applies unchanged.
func (r *Resolver) OptionsFor(filePath string) (options.Resolved, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return options.Resolved{}, err
	}

	canon, err := canonicalDir(filepath.Dir(abs))
	if err != nil {
		return options.Resolved{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.resolveLocked(canon)
	if err != nil {
		return options.Resolved{}, err
	}
	if !res.Found {
		return r.baseline.Clone(), nil
	}
	return res.Node.Options(r.baseline), nil
}

// canonicalDir normalizes a directory for use as a cache key: absolute,
// cleaned, and with symlinks resolved where possible. Equivalent paths must
// map to one key or sibling queries would duplicate cache entries.
func canonicalDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	abs = filepath.Clean(abs)

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	// Nonexistent or unreadable path components: fall back to the cleaned
	// absolute path so resolution can still answer from ancestors.
	return abs, nil
}
