package models

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Stable error classifications surfaced to callers.
const (
	CodeInvalidID     = "invalid_id"
	CodeNotFound      = "not_found"
	CodeDuplicateLike = "duplicate_like"
	CodeAlreadyExists = "already_exists"
	CodeInternal      = "internal"
)

// ErrorResponse is the standardized API error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// AppError is a classified application error. Expected conditions (bad id,
// missing entity, duplicate like, name conflict) carry their code to the
// caller; internal errors are logged and surfaced opaque.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewInvalidIDError(raw string) *AppError {
	return &AppError{
		Code:    CodeInvalidID,
		Message: fmt.Sprintf("invalid identifier %q", raw),
	}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %v not found", resource, id),
	}
}

func NewDuplicateLikeError() *AppError {
	return &AppError{
		Code:    CodeDuplicateLike,
		Message: "post already liked by this user",
	}
}

func NewAlreadyExistsError(message string) *AppError {
	return &AppError{
		Code:    CodeAlreadyExists,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "internal error",
		Err:     err,
	}
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// RespondWithError maps an error to an HTTP status and writes the
// standardized body. Internal detail never reaches the response.
func RespondWithError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = NewInternalError(err)
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case CodeInvalidID:
		status = fiber.StatusBadRequest
	case CodeNotFound:
		status = fiber.StatusNotFound
	case CodeDuplicateLike, CodeAlreadyExists:
		status = fiber.StatusConflict
	case CodeInternal:
		slog.Error("internal error",
			"path", c.Path(),
			"method", c.Method(),
			"error", appErr.Err,
		)
	}

	return c.Status(status).JSON(ErrorResponse{
		Error: appErr.Message,
		Code:  appErr.Code,
	})
}
