/*
Copyright Trustmesh Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode is the stable machine-readable code returned to API clients.
type ErrorCode string

const (
	SystemError  ErrorCode = "system-error"
	BadRequest   ErrorCode = "bad-request"
	InvalidValue ErrorCode = "invalid-value"
	DoesntExist  ErrorCode = "doesnt-exist"
	Forbidden    ErrorCode = "forbidden"
	Unauthorized ErrorCode = "unauthorized"
)

// Name returns the wire name of the code.
func (c ErrorCode) Name() string {
	return string(c)
}

// CustomError carries an error code plus enough context to render an HTTP
// error response.
type CustomError struct {
	Code            ErrorCode
	IncorrectValue  string
	Component       Component
	FailedOperation string
	Err             error
}

// NewValidationError creates an error tied to a specific incorrect input value.
func NewValidationError(code ErrorCode, incorrectValue string, err error) *CustomError {
	return &CustomError{
		Code:           code,
		IncorrectValue: incorrectValue,
		Err:            err,
	}
}

// NewCustomError creates an error with the given code.
func NewCustomError(code ErrorCode, err error) *CustomError {
	return &CustomError{
		Code: code,
		Err:  err,
	}
}

// NewSystemError creates an internal error attributed to a component operation.
func NewSystemError(component Component, failedOperation string, err error) *CustomError {
	return &CustomError{
		Code:            SystemError,
		Component:       component,
		FailedOperation: failedOperation,
		Err:             err,
	}
}

// NewUnauthorizedError creates an unauthorized error.
func NewUnauthorizedError(err error) *CustomError {
	return &CustomError{
		Code: Unauthorized,
		Err:  err,
	}
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Code == SystemError {
		return fmt.Sprintf("%s[%s, %s]: %s", SystemError.Name(), e.Component, e.FailedOperation, e.Err)
	}

	if e.IncorrectValue != "" {
		return fmt.Sprintf("%s[%s]: %s", e.Code.Name(), e.IncorrectValue, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Code.Name(), e.Err)
}

// Unwrap returns the underlying error.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// HTTPCodeMsg maps the error to an HTTP status and a JSON-serializable body.
func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	var code int

	switch e.Code {
	case SystemError:
		code = http.StatusInternalServerError
	case BadRequest, InvalidValue:
		code = http.StatusBadRequest
	case DoesntExist:
		code = http.StatusNotFound
	case Forbidden:
		code = http.StatusForbidden
	case Unauthorized:
		code = http.StatusUnauthorized
	default:
		code = http.StatusInternalServerError
	}

	msg := map[string]interface{}{
		"code":    e.Code.Name(),
		"message": e.Err.Error(),
	}

	if e.IncorrectValue != "" {
		msg["incorrectValue"] = e.IncorrectValue
	}

	if e.Component != "" {
		msg["component"] = string(e.Component)
		msg["operation"] = e.FailedOperation
	}

	return code, msg
}

// GetErrorDetails extracts the message, code and component from a wrapped
// CustomError, or returns the raw message when the chain has none.
func GetErrorDetails(err error) (string, string, Component) {
	var customErr *CustomError

	if errors.As(err, &customErr) {
		return customErr.Err.Error(), string(customErr.Code), customErr.Component
	}

	return err.Error(), "", ""
}
