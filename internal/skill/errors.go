package skill

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknownIntentType Kind = iota + 1
	KindUnknownIntentName
	KindTransport
	KindParse
	KindMissingSlot
)

func (k Kind) String() string {
	switch k {
	case KindUnknownIntentType:
		return "unknown intent type"
	case KindUnknownIntentName:
		return "unknown intent"
	case KindTransport:
		return "quote transport"
	case KindParse:
		return "quote parse"
	case KindMissingSlot:
		return "missing slot"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error описывает неудачную обработку события. На неудачу навык не произносит
// ничего, запасной ответ показывает сама платформа.
type Error struct {
	Kind        Kind
	RequestType string
	Intent      string
	Slot        string
	Err         error
}

func (e *Error) Error() string {
	msg := "Exception: " + e.Kind.String()
	switch e.Kind {
	case KindUnknownIntentType:
		msg += fmt.Sprintf(" %q", e.RequestType)
	case KindUnknownIntentName:
		msg += fmt.Sprintf(" %q", e.Intent)
	case KindMissingSlot:
		msg += fmt.Sprintf(" %q in %s", e.Slot, e.Intent)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is позволяет сравнивать ошибки по виду: errors.Is(err, &Error{Kind: KindParse}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf возвращает вид ошибки или 0, если err не *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
