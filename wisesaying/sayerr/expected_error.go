package sayerr

import (
	"errors"
	"fmt"
)

// ExpectedErr represents a class of expected errors that wisesaying may produce (e.g. user input validation).
type ExpectedErr struct {
	Err error
}

// NewExpectedErr generates a new ExpectedErr.
func NewExpectedErr(msgFormat string, args ...interface{}) ExpectedErr {
	return ExpectedErr{
		Err: fmt.Errorf(msgFormat, args...),
	}
}

// Error returns a string representing the underlying error condition.
func (e ExpectedErr) Error() string {
	return e.Err.Error()
}

// IsExpected reports whether any error in the chain is an ExpectedErr.
func IsExpected(err error) bool {
	var expected ExpectedErr
	return errors.As(err, &expected)
}
