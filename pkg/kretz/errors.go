package kretz

import (
	"errors"
	"fmt"
)

// ErrVolumeNotLoaded is returned by GetVolume when no volume data is present.
// Because NewLoader either fully succeeds or returns an error, callers holding
// a *Loader should never observe it; the accessor still guards against it
// rather than returning a nil volume silently.
var ErrVolumeNotLoaded = errors.New("volume data not loaded")

// FormatError reports a structural problem with the file: a bad magic string
// or a header region shorter than the fixed 256 bytes. These failures are
// fatal and leave the caller with no usable loader, unlike content anomalies
// (unknown tags, truncated payloads) which are recovered and flagged in the
// metadata instead.
type FormatError struct {
	// Reason describes which structural check failed.
	Reason string

	// Expected and Actual carry the expected and observed values for the
	// failed check, when applicable (e.g. the magic string).
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("invalid kretzfile format: %s: expected %q, got %q",
			e.Reason, e.Expected, e.Actual)
	}
	return fmt.Sprintf("invalid kretzfile format: %s", e.Reason)
}
