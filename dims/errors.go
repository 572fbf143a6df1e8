package dims

import "fmt"

// DimensionError reports a rank or axis bounds violation. It is the only
// error kind produced by this package.
type DimensionError struct {
	msg string
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return e.msg
}

// dimErrorf builds a *DimensionError with a formatted message.
func dimErrorf(format string, args ...any) *DimensionError {
	return &DimensionError{msg: fmt.Sprintf(format, args...)}
}
