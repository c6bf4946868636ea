package parser

import (
	"errors"
	"fmt"
)

// ============================================================
// Parse errors
// ============================================================

var (
	ErrMalformedCoordinates = errors.New("malformed coordinates")
	ErrInvalidArity         = errors.New("invalid arity")
)

// MalformedCoordinatesError — компонент координат не является конечным десятичным числом.
type MalformedCoordinatesError struct {
	Raw   string // захваченный текст координат целиком
	Value string // компонент, который не разобрался
}

func (e *MalformedCoordinatesError) Error() string {
	return fmt.Sprintf("malformed coordinates %q: cannot parse %q as a number", e.Raw, e.Value)
}

func (e *MalformedCoordinatesError) Unwrap() error {
	return ErrMalformedCoordinates
}

// InvalidArityError — неверное число компонент координат.
type InvalidArityError struct {
	Shape    string
	Raw      string
	Expected int
	Found    int
}

func (e *InvalidArityError) Error() string {
	return fmt.Sprintf("invalid %s coordinates %q: expected %d components, found %d", e.Shape, e.Raw, e.Expected, e.Found)
}

func (e *InvalidArityError) Unwrap() error {
	return ErrInvalidArity
}

// IsParseError сообщает, вызвана ли ошибка содержимым входного текста.
func IsParseError(err error) bool {
	return errors.Is(err, ErrMalformedCoordinates) || errors.Is(err, ErrInvalidArity)
}
