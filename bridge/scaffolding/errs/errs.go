// Package errs provides types and support related to web error functionality.
package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
)

// Error represents an error in the system.
type Error struct {
	Code     Code   `json:"code"`
	Message  string `json:"message"`
	FuncName string `json:"-"`
	FileName string `json:"-"`
}

// New constructs an error based on an app error.
func New(code Code, err error) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  err.Error(),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Newf constructs an error based on an error format string.
func Newf(code Code, format string, v ...any) *Error {
	pc, filename, line, _ := runtime.Caller(1)

	return &Error{
		Code:     code,
		Message:  fmt.Sprintf(format, v...),
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Encode implements the web package's Encoder interface.
func (e *Error) Encode() ([]byte, string, error) {
	type response struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}

	data, err := json.Marshal(response{
		Error: e.Message,
		Code:  e.Code.String(),
	})
	if err != nil {
		return nil, "", err
	}

	return data, "application/json", nil
}

// HTTPStatus implements the web package's httpStatus interface.
func (e *Error) HTTPStatus() int {
	return httpStatus[e.Code]
}

// IsError tests whether err carries an *Error.
func IsError(err error) bool {
	var er *Error
	return errors.As(err, &er)
}

// GetError returns the *Error inside err, or a wrapped Internal error.
func GetError(err error) *Error {
	var er *Error
	if !errors.As(err, &er) {
		return &Error{
			Code:    Internal,
			Message: err.Error(),
		}
	}
	return er
}
