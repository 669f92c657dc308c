// Package exitcode maps run outcomes to process exit codes.
//
// rgsweep deliberately exposes only two codes: 0 for a run that completed
// with zero failed deletions (including runs where nothing was deleted
// because everything was excluded, confirmation was rejected, or dry-run
// was active), and 1 for everything else.
package exitcode

import "errors"

const (
	OK      = 0
	Generic = 1
)

// Error carries an explicit exit code alongside its cause.
type Error struct {
	Code  int
	Cause error
}

func (e *Error) Error() string {
	return e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Wrap attaches an exit code to err; nil stays nil.
func Wrap(code int, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Cause: err}
}

// Of resolves the exit code for an error returned from the CLI.
func Of(err error) int {
	if err == nil {
		return OK
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return Generic
}
