package middlewares

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/dmitrymomot/hrassist/internal/web"
)

// stackSize caps the captured stack trace.
const stackSize = 4096

// PanicError is a recovered panic, surfaced to the error handler.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// AsPanicError extracts a PanicError from err if present.
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// Recover returns middleware that turns panics into errors for the global
// error handler, logging the stack trace.
func Recover() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					stack := make([]byte, stackSize)
					n := runtime.Stack(stack, false)
					stack = stack[:n]

					c.LogError("panic recovered", "panic", r, "stack", string(stack))

					err = &PanicError{Value: r, Stack: stack}
				}
			}()

			return next(c)
		}
	}
}
