package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldWorkingDir = "working_dir"

	// Resolution fields.
	FieldConfig          = "config"
	FieldBaseline        = "baseline"
	FieldMaxLineWidth    = "max_line_width"
	FieldMaxCommentWidth = "max_comment_width"

	// Run fields.
	FieldWrite = "write"
	FieldCheck = "check"
	FieldJobs  = "jobs"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesFormatted  = "files_formatted"
	FieldFilesUnchanged  = "files_unchanged"
	FieldFilesErrored    = "files_errored"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
