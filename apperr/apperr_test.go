package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindRange, KindOf(Range("guests out of range")))
	assert.Equal(t, KindSlotConflict, KindOf(SlotConflict("slot taken")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain error")))

	wrapped := fmt.Errorf("creating reservation: %w", LeadTime("too soon"))
	assert.Equal(t, KindLeadTime, KindOf(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[*Error]int{
		Validation("bad"):        fiber.StatusBadRequest,
		Range("bad"):             fiber.StatusBadRequest,
		LeadTime("bad"):          fiber.StatusBadRequest,
		InvalidAmount("bad"):     fiber.StatusBadRequest,
		NotFound("gone"):         fiber.StatusNotFound,
		CapacityExceeded("full"): fiber.StatusConflict,
		SlotConflict("taken"):    fiber.StatusConflict,
		InvalidTransition("no"):  fiber.StatusConflict,
		Internal("boom"):         fiber.StatusInternalServerError,
	}

	for err, want := range cases {
		assert.Equal(t, want, HTTPStatus(err), err.Message)
	}

	assert.Equal(t, fiber.StatusInternalServerError, HTTPStatus(errors.New("db down")))
}

func TestErrorMessageFormatting(t *testing.T) {
	err := Range("number of guests must be between %d and %d", 50, 150)
	assert.Equal(t, "number of guests must be between 50 and 150", err.Error())
}
