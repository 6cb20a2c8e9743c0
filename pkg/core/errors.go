package core

import "errors"

// Common errors.
var (
	ErrArity                  = errors.New("illegal number of arguments")
	ErrInvalidDirection       = errors.New("direction is invalid")
	ErrInvalidNote            = errors.New("note is invalid")
	ErrUnknownInterval        = errors.New("interval is invalid")
	ErrUnidentifiableInterval = errors.New("interval cannot be identified")
)

// Error kinds as used by worksheets and JSON output.
const (
	KindArity          = "arity"
	KindDirection      = "direction"
	KindNote           = "note"
	KindInterval       = "interval"
	KindUnidentifiable = "unidentifiable"
)

// ErrorKind maps err to its short kind name. It returns "" for nil and for
// errors that did not originate in this package.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrArity):
		return KindArity
	case errors.Is(err, ErrInvalidDirection):
		return KindDirection
	case errors.Is(err, ErrInvalidNote):
		return KindNote
	case errors.Is(err, ErrUnknownInterval):
		return KindInterval
	case errors.Is(err, ErrUnidentifiableInterval):
		return KindUnidentifiable
	}
	return ""
}
