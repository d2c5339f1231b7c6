package ds

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrShipNotFound           = errors.New("ship not found")
	ErrInvalidCredentials     = errors.New("invalid login or password")
	ErrUnauthenticated        = errors.New("not authenticated")
	ErrNameServiceUnavailable = errors.New("name generator service is unavailable")
)

// ValidationError carries per-field messages so the client can render
// a precise error without seeing internals.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// AsValidationError возвращает *ValidationError, если err им является.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
