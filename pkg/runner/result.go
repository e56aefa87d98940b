package runner

// Status describes what happened to one file.
type Status int

const (
	// StatusUnchanged means the file was already formatted.
	StatusUnchanged Status = iota

	// StatusChanged means check mode found a formatting difference.
	StatusChanged

	// StatusWritten means write mode rewrote the file.
	StatusWritten

	// StatusSkipped means the file changed externally between read and
	// write and was left alone.
	StatusSkipped

	// StatusErrored means the file could not be processed.
	StatusErrored
)

// FileOutcome is the per-file result of a run.
type FileOutcome struct {
	// Path is the absolute path of the processed file.
	Path string

	// Status describes what happened.
	Status Status

	// Formatted holds the reformatted content in check mode when it
	// differs from the original. Empty otherwise.
	Formatted string

	// Error is set when Status is StatusErrored.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesUnchanged  int
	FilesChanged    int
	FilesWritten    int
	FilesSkipped    int
	FilesErrored    int
}

// Result is the overall runner result, with files in deterministic
// (path-sorted) order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasChanges reports whether any file differed from its formatted form.
func (r *Result) HasChanges() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesChanged > 0 || r.Stats.FilesWritten > 0
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// accumulate folds one outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	switch outcome.Status {
	case StatusUnchanged:
		r.Stats.FilesUnchanged++
	case StatusChanged:
		r.Stats.FilesChanged++
	case StatusWritten:
		r.Stats.FilesWritten++
	case StatusSkipped:
		r.Stats.FilesSkipped++
	case StatusErrored:
		r.Stats.FilesErrored++
	}
}
