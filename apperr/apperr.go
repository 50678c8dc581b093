// Package apperr carries the domain error kinds surfaced by the reservation
// engine so handlers can map them to HTTP statuses without leaking storage
// details to callers.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind string

const (
	KindValidation        Kind = "VALIDATION_ERROR"
	KindRange             Kind = "RANGE_ERROR"
	KindLeadTime          Kind = "LEAD_TIME_ERROR"
	KindNotFound          Kind = "NOT_FOUND"
	KindCapacityExceeded  Kind = "CAPACITY_EXCEEDED"
	KindSlotConflict      Kind = "SLOT_CONFLICT"
	KindInvalidTransition Kind = "INVALID_TRANSITION"
	KindInvalidAmount     Kind = "INVALID_AMOUNT"
	KindInternal          Kind = "INTERNAL_ERROR"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *Error {
	return New(KindValidation, format, args...)
}

func Range(format string, args ...any) *Error {
	return New(KindRange, format, args...)
}

func LeadTime(format string, args ...any) *Error {
	return New(KindLeadTime, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

func CapacityExceeded(format string, args ...any) *Error {
	return New(KindCapacityExceeded, format, args...)
}

func SlotConflict(format string, args ...any) *Error {
	return New(KindSlotConflict, format, args...)
}

func InvalidTransition(format string, args ...any) *Error {
	return New(KindInvalidTransition, format, args...)
}

func InvalidAmount(format string, args ...any) *Error {
	return New(KindInvalidAmount, format, args...)
}

func Internal(format string, args ...any) *Error {
	return New(KindInternal, format, args...)
}

// KindOf extracts the domain kind; anything that is not an *Error is treated
// as a generic internal failure.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error kind to the status returned to the caller.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindRange, KindLeadTime, KindInvalidAmount:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindCapacityExceeded, KindSlotConflict, KindInvalidTransition:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
