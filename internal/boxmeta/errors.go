package boxmeta

import "errors"

// Failure classes for a publish run. Every one of them is fatal: nothing is
// retried, and a failure after the artifact is exported leaves it on disk.
var (
	// ErrConfig marks missing or malformed required input.
	ErrConfig = errors.New("configuration error")

	// ErrConflict marks a pre-existing file or directory that would be
	// clobbered. The operator has to clear it manually before rerunning.
	ErrConflict = errors.New("conflict")

	// ErrExport marks a nonzero exit from the external export process.
	ErrExport = errors.New("export failed")

	// ErrTransport marks a remote index fetch failure other than not-found.
	ErrTransport = errors.New("transport error")

	// ErrCorrupt marks a fetched index document that fails to parse or
	// violates the metadata schema.
	ErrCorrupt = errors.New("index corrupt")

	// ErrIdentity marks a fetched index whose name disagrees with the
	// requested box. Guards against pointing at the wrong remote index and
	// appending into an unrelated box's history.
	ErrIdentity = errors.New("identity mismatch")
)
