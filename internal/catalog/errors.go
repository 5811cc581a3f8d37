package catalog

import (
	"errors"
	"fmt"
)

// MissingKeyError reports a row without a field its kind cannot do without.
type MissingKeyError struct {
	Kind Kind
	Key  string
	Line int
}

func (e *MissingKeyError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s record is missing required field %q", e.Line, e.Kind, e.Key)
	}
	return fmt.Sprintf("%s record is missing required field %q", e.Kind, e.Key)
}

func IsMissingKey(err error) bool {
	var e *MissingKeyError
	return errors.As(err, &e)
}

// InvalidFieldError reports a present field whose value cannot be used,
// e.g. a non-numeric season.
type InvalidFieldError struct {
	Kind  Kind
	Key   string
	Value string
	Line  int
	Err   error
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("line %d: %s field %q has invalid value %q: %v", e.Line, e.Kind, e.Key, e.Value, e.Err)
}

func (e *InvalidFieldError) Unwrap() error { return e.Err }
