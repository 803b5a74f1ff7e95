package cenipa

import(
	"errors"
	"fmt"
)

// File-level failures are terminal: the caller gets one of these and no
// partial dataset. Row-level data problems are recovered locally in the
// cleaners and never surface as errors.

// One of the required input files is absent.
type MissingFileError struct {
	Path  string
}
func (e MissingFileError)Error() string {
	return fmt.Sprintf("cenipa: required file '%s' is missing", e.Path)
}

// The file couldn't be decoded under the configured text encoding.
type EncodingError struct {
	Path      string
	Encoding  string
	Err       error
}
func (e EncodingError)Error() string {
	alt := "latin-1"
	if alt == e.Encoding { alt = "windows-1252" }
	return fmt.Sprintf("cenipa: '%s' is not valid %s (try '%s'): %v", e.Path, e.Encoding, alt, e.Err)
}
func (e EncodingError)Unwrap() error { return e.Err }

// Any other read/parse failure, wrapping the cause.
type LoadError struct {
	Path  string
	Err   error
}
func (e LoadError)Error() string {
	return fmt.Sprintf("cenipa: loading '%s': %v", e.Path, e.Err)
}
func (e LoadError)Unwrap() error { return e.Err }

// Returned by the row reader when decoded text contains the replacement
// rune, i.e. bytes the configured charmap couldn't represent. The loader
// wraps it into an EncodingError with the offending path.
var ErrUndecodable = errors.New("undecodable byte sequence")
