package graph

// Error codes surfaced in the GraphQL extensions block.
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeBadUserInput    = "BAD_USER_INPUT"
	CodeNotFound        = "NOT_FOUND"
	CodeRateLimited     = "RATE_LIMITED"
)

// Error is a resolver failure serialized as a GraphQL error with a code
// and, for input errors, a field → explanation map.
type Error struct {
	Message string
	Code    string
	Fields  map[string]interface{}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.Code}
	if len(e.Fields) > 0 {
		ext["fields"] = e.Fields
	}
	return ext
}

func errUnauthenticated(message string) *Error {
	return &Error{Message: message, Code: CodeUnauthenticated}
}

func errForbidden(message string) *Error {
	return &Error{Message: message, Code: CodeForbidden}
}

func errInput(message string, fields map[string]interface{}) *Error {
	return &Error{Message: message, Code: CodeBadUserInput, Fields: fields}
}

func errNotFound(message string) *Error {
	return &Error{Message: message, Code: CodeNotFound}
}

func errRateLimited(message string) *Error {
	return &Error{Message: message, Code: CodeRateLimited}
}
