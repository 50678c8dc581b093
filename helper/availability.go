package helper

import (
	"catering_manager/apperr"
	"catering_manager/constants"
	"catering_manager/database"
	"catering_manager/model"
	"catering_manager/utils"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"gorm.io/gorm"
)

// GroupBookedSlots folds accepted reservations into date -> slots pairs,
// sorted by date for the calendar UI.
func GroupBookedSlots(accepted []model.Reservation) []model.BookedSlot {
	byDate := map[string][]string{}
	for _, r := range accepted {
		key := r.EventDate.String()
		byDate[key] = append(byDate[key], r.TimeSlot)
	}

	result := make([]model.BookedSlot, 0, len(byDate))
	for date, slots := range byDate {
		sort.Strings(slots)
		result = append(result, model.BookedSlot{Date: date, Slots: slots})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}

// GetBookedDates answers the availability query by scanning ACCEPTED
// reservations in the range. The BookedDate projection is never consulted
// here; reservations are the source of truth.
func GetBookedDates(db *gorm.DB, start, end *time.Time) ([]model.BookedSlot, error) {
	query := db.Where("status = ?", constants.RESERVATION_ACCEPTED)
	if start != nil {
		query = query.Where("event_date >= ?", start.Format("2006-01-02"))
	}
	if end != nil {
		query = query.Where("event_date <= ?", end.Format("2006-01-02"))
	}

	var accepted []model.Reservation
	if err := query.Find(&accepted).Error; err != nil {
		return nil, apperr.Internal(constants.ERROR_INTERNAL_ERROR)
	}

	return GroupBookedSlots(accepted), nil
}

// RebuildBookedDates drops and re-derives the projection from ACCEPTED
// reservations. Idempotent and safe to rerun at any time.
func RebuildBookedDates(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM booked_dates").Error; err != nil {
			return err
		}

		var accepted []model.Reservation
		if err := tx.Where("status = ?", constants.RESERVATION_ACCEPTED).Find(&accepted).Error; err != nil {
			return err
		}

		for _, r := range accepted {
			booked := model.BookedDate{
				Date:          r.EventDate,
				TimeSlot:      r.TimeSlot,
				ReservationNo: r.ReservationNo,
			}
			if err := tx.Create(&booked).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// PublishAvailabilityChange pushes a calendar change onto the month channel
// consumed by the availability websocket. Best effort only.
func PublishAvailabilityChange(date utils.CustomDate, slot, status string) {
	if database.Redis == nil {
		return
	}

	payload, err := json.Marshal(map[string]string{
		"date":   date.String(),
		"slot":   slot,
		"status": status,
	})
	if err != nil {
		return
	}

	channel := fmt.Sprintf("availability:%s", date.Format("2006-01"))
	if err := database.Redis.Publish(context.Background(), channel, payload).Err(); err != nil {
		log.Printf("availability publish failed for %s: %v", channel, err)
	}
}
