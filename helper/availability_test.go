package helper

import (
	"catering_manager/constants"
	"catering_manager/model"
	"catering_manager/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func acceptedOn(date string, slot string) model.Reservation {
	d, _ := utils.ParseCustomDate(date)
	return model.Reservation{
		EventDate: d,
		TimeSlot:  slot,
		Status:    constants.RESERVATION_ACCEPTED,
	}
}

func TestGroupBookedSlotsEmpty(t *testing.T) {
	assert.Empty(t, GroupBookedSlots(nil))
}

func TestGroupBookedSlotsGroupsByDate(t *testing.T) {
	accepted := []model.Reservation{
		acceptedOn("2026-09-15", constants.SLOT_DINNER),
		acceptedOn("2026-09-10", constants.SLOT_LUNCH),
		acceptedOn("2026-09-15", constants.SLOT_LUNCH),
	}

	result := GroupBookedSlots(accepted)

	assert.Equal(t, []model.BookedSlot{
		{Date: "2026-09-10", Slots: []string{constants.SLOT_LUNCH}},
		{Date: "2026-09-15", Slots: []string{constants.SLOT_DINNER, constants.SLOT_LUNCH}},
	}, result)
}

func TestGroupBookedSlotsSortedOutput(t *testing.T) {
	accepted := []model.Reservation{
		acceptedOn("2026-12-01", constants.SLOT_LUNCH),
		acceptedOn("2026-01-05", constants.SLOT_DINNER),
		acceptedOn("2026-06-20", constants.SLOT_EARLY_DINNER),
	}

	result := GroupBookedSlots(accepted)

	for i := 1; i < len(result); i++ {
		assert.Less(t, result[i-1].Date, result[i].Date)
	}
}

func TestDaysUntilIgnoresClockTime(t *testing.T) {
	late := time.Date(2026, 6, 1, 23, 59, 0, 0, time.UTC)
	event := utils.NewCustomDate(time.Date(2026, 6, 8, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 7, event.DaysUntil(late))
}
