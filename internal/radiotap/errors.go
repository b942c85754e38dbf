package radiotap

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedHeader = errors.New("radiotap: malformed header")
	ErrTruncatedField  = errors.New("radiotap: truncated field")
)

// TruncatedFieldError reports a present field whose bytes run past the end
// of the payload. It matches ErrTruncatedField with errors.Is.
type TruncatedFieldError struct {
	Field  FieldID
	Offset int
	Need   int
	Have   int
}

func (e *TruncatedFieldError) Error() string {
	return fmt.Sprintf("radiotap: truncated field %s at offset %d: need %d bytes, have %d",
		e.Field, e.Offset, e.Need, e.Have)
}

func (e *TruncatedFieldError) Is(target error) bool {
	return target == ErrTruncatedField
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrMalformedHeader}, args...)...)
}
