package helper

import (
	"catering_manager/apperr"
	"catering_manager/constants"
	"catering_manager/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTransitionStaffPaths(t *testing.T) {
	cases := []struct {
		current, target string
		wantErr         bool
	}{
		{constants.RESERVATION_PENDING, constants.RESERVATION_ACCEPTED, false},
		{constants.RESERVATION_PENDING, constants.RESERVATION_DECLINED, false},
		{constants.RESERVATION_ACCEPTED, constants.RESERVATION_COMPLETED, false},
		{constants.RESERVATION_DECLINED, constants.RESERVATION_ACCEPTED, true},
		{constants.RESERVATION_CANCELLED, constants.RESERVATION_ACCEPTED, true},
		{constants.RESERVATION_COMPLETED, constants.RESERVATION_ACCEPTED, true},
		{constants.RESERVATION_PENDING, constants.RESERVATION_COMPLETED, true},
		{constants.RESERVATION_DECLINED, constants.RESERVATION_COMPLETED, true},
	}

	for _, tc := range cases {
		noop, err := ValidateTransition(tc.current, tc.target, true, false)
		assert.False(t, noop, "%s->%s", tc.current, tc.target)
		if tc.wantErr {
			assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err), "%s->%s", tc.current, tc.target)
		} else {
			assert.NoError(t, err, "%s->%s", tc.current, tc.target)
		}
	}
}

func TestValidateTransitionSameStateIsNoop(t *testing.T) {
	for _, status := range constants.ReservationStatuses {
		noop, err := ValidateTransition(status, status, true, false)
		assert.True(t, noop, status)
		assert.NoError(t, err, status)
	}
}

func TestValidateTransitionCustomerCancel(t *testing.T) {
	noop, err := ValidateTransition(constants.RESERVATION_PENDING, constants.RESERVATION_CANCELLED, false, true)
	assert.False(t, noop)
	assert.NoError(t, err)

	// Accepted reservations are out of the customer's hands.
	_, err = ValidateTransition(constants.RESERVATION_ACCEPTED, constants.RESERVATION_CANCELLED, false, true)
	assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))
}

func TestValidateTransitionRoleEnforcement(t *testing.T) {
	_, err := ValidateTransition(constants.RESERVATION_PENDING, constants.RESERVATION_ACCEPTED, false, true)
	assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))

	_, err = ValidateTransition(constants.RESERVATION_PENDING, constants.RESERVATION_CANCELLED, true, false)
	assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))

	_, err = ValidateTransition(constants.RESERVATION_ACCEPTED, constants.RESERVATION_COMPLETED, false, true)
	assert.Equal(t, apperr.KindInvalidTransition, apperr.KindOf(err))
}

func TestCheckAcceptanceCapacity(t *testing.T) {
	existing := []model.Reservation{
		{TimeSlot: constants.SLOT_LUNCH},
		{TimeSlot: constants.SLOT_DINNER},
	}

	err := CheckAcceptance(existing, constants.SLOT_EARLY_DINNER)
	assert.Equal(t, apperr.KindCapacityExceeded, apperr.KindOf(err))
}

func TestCheckAcceptanceSlotConflict(t *testing.T) {
	existing := []model.Reservation{{TimeSlot: constants.SLOT_LUNCH}}

	err := CheckAcceptance(existing, constants.SLOT_LUNCH)
	assert.Equal(t, apperr.KindSlotConflict, apperr.KindOf(err))

	assert.NoError(t, CheckAcceptance(existing, constants.SLOT_DINNER))
}

func TestCheckAcceptanceEmptyDay(t *testing.T) {
	assert.NoError(t, CheckAcceptance(nil, constants.SLOT_LUNCH))
}
