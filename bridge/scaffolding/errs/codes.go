package errs

import "net/http"

// Code represents an error classification.
type Code struct {
	value int
}

var (
	OK              = Code{0}
	InvalidArgument = Code{1}
	NotFound        = Code{2}
	AlreadyExists   = Code{3}
	Unauthenticated = Code{4}
	Internal        = Code{5}

	// InternalOnlyLog marks errors whose details must never reach the
	// client. The middleware logs them and responds with a generic
	// internal error.
	InternalOnlyLog = Code{6}
)

var codeNames = map[Code]string{
	OK:              "ok",
	InvalidArgument: "invalid_argument",
	NotFound:        "not_found",
	AlreadyExists:   "already_exists",
	Unauthenticated: "unauthenticated",
	Internal:        "internal",
	InternalOnlyLog: "internal",
}

var httpStatus = map[Code]int{
	OK:              http.StatusOK,
	InvalidArgument: http.StatusBadRequest,
	NotFound:        http.StatusNotFound,
	AlreadyExists:   http.StatusConflict,
	Unauthenticated: http.StatusUnauthorized,
	Internal:        http.StatusInternalServerError,
	InternalOnlyLog: http.StatusInternalServerError,
}

func (c Code) String() string {
	return codeNames[c]
}

// MarshalJSON implements json.Marshaler.
func (c Code) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}
