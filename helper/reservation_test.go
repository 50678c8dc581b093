package helper

import (
	"catering_manager/apperr"
	"catering_manager/constants"
	"catering_manager/model"
	"catering_manager/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validInput(now time.Time) model.CreateReservationInput {
	return model.CreateReservationInput{
		NumberOfGuests: 80,
		TimeSlot:       constants.SLOT_LUNCH,
		EventDate:      utils.NewCustomDate(now.AddDate(0, 0, 10)),
		Venue: model.VenueInput{
			Municipality: "Tagaytay",
			Barangay:     "Silang Crossing East",
			Street:       "123 Aguinaldo Highway",
			LotBlock:     utils.Ptr("Lot 4, Block 2"),
		},
		Selections: map[string]uint{"Main Course": 1},
	}
}

func TestValidateReservationInputAccepts(t *testing.T) {
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	assert.NoError(t, ValidateReservationInput(validInput(now), now))
}

func TestValidateReservationInputMissingFields(t *testing.T) {
	now := time.Now()
	input := validInput(now)
	input.TimeSlot = ""

	err := ValidateReservationInput(input, now)
	assert.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestValidateReservationInputUnknownSlot(t *testing.T) {
	now := time.Now()
	input := validInput(now)
	input.TimeSlot = "BRUNCH"

	err := ValidateReservationInput(input, now)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestValidateReservationInputGuestRange(t *testing.T) {
	now := time.Now()

	for _, guests := range []int{49, 151, 1} {
		input := validInput(now)
		input.NumberOfGuests = guests
		err := ValidateReservationInput(input, now)
		assert.Equal(t, apperr.KindRange, apperr.KindOf(err), "guests=%d", guests)
	}

	for _, guests := range []int{50, 150} {
		input := validInput(now)
		input.NumberOfGuests = guests
		assert.NoError(t, ValidateReservationInput(input, now), "guests=%d", guests)
	}
}

func TestValidateReservationInputLeadTime(t *testing.T) {
	now := time.Date(2026, 6, 1, 23, 30, 0, 0, time.UTC)

	input := validInput(now)
	input.EventDate = utils.NewCustomDate(now.AddDate(0, 0, 6))
	err := ValidateReservationInput(input, now)
	assert.Equal(t, apperr.KindLeadTime, apperr.KindOf(err))

	// Exactly 7 whole days out is allowed, clock time notwithstanding.
	input.EventDate = utils.NewCustomDate(now.AddDate(0, 0, 7))
	assert.NoError(t, ValidateReservationInput(input, now))
}

func TestValidateReservationInputChecksRangeBeforeLeadTime(t *testing.T) {
	now := time.Now()
	input := validInput(now)
	input.NumberOfGuests = 10
	input.EventDate = utils.NewCustomDate(now.AddDate(0, 0, 2))

	// Both rules violated; the guest range must win.
	err := ValidateReservationInput(input, now)
	assert.Equal(t, apperr.KindRange, apperr.KindOf(err))
}

func TestValidateReservationInputVenue(t *testing.T) {
	now := time.Now()

	input := validInput(now)
	input.Venue.Barangay = ""
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(ValidateReservationInput(input, now)))

	input = validInput(now)
	input.Venue.Street = "abc"
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(ValidateReservationInput(input, now)))
}

func TestValidateReservationInputRequiresSelections(t *testing.T) {
	now := time.Now()
	input := validInput(now)
	input.Selections = nil

	err := ValidateReservationInput(input, now)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
