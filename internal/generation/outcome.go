package generation

// OutcomeKind discriminates the result of generating one directory.
type OutcomeKind int

const (
	// OutcomeWritten means a barrel file was written.
	OutcomeWritten OutcomeKind = iota + 1
	// OutcomeEmpty means nothing was exportable and skipEmpty suppressed the file.
	OutcomeEmpty
	// OutcomeFailed means the directory could not be generated.
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeWritten:
		return "written"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the per-directory result passed from a child to its parent.
type Outcome struct {
	kind OutcomeKind
	path string
	err  error
}

// Written reports a barrel written at path (host form).
func Written(path string) Outcome { return Outcome{kind: OutcomeWritten, path: path} }

// Empty reports a skipped directory.
func Empty() Outcome { return Outcome{kind: OutcomeEmpty} }

// Failed reports a directory whose generation failed with err.
func Failed(err error) Outcome { return Outcome{kind: OutcomeFailed, err: err} }

func (o Outcome) Kind() OutcomeKind { return o.kind }

// Path is the written barrel path; empty unless Kind is OutcomeWritten.
func (o Outcome) Path() string { return o.path }

// Err is the failure; nil unless Kind is OutcomeFailed.
func (o Outcome) Err() error { return o.err }
