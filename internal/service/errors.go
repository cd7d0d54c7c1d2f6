package service

// Custom errors
var (
	ErrDuplicateEmail      = &Error{Message: "email already registered"}
	ErrInvalidCredentials  = &Error{Message: "invalid email or password"}
	ErrNotFound            = &Error{Message: "not found"}
	ErrNoQuestions         = &Error{Message: "no questions available"}
	ErrDuplicateSubmission = &Error{Message: "duplicate submission"}
)

type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}
