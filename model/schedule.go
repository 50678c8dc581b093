package model

import "catering_manager/utils"

// BookedDate is a derived projection of ACCEPTED reservations keyed by
// date/slot. It only speeds up calendar reads; reservations stay the source
// of truth and the projection can be rebuilt at any time.
type BookedDate struct {
	DTO
	Date          utils.CustomDate `gorm:"type:date;index:idx_booked_date_slot,unique" json:"date"`
	TimeSlot      string           `gorm:"index:idx_booked_date_slot,unique" json:"timeSlot"`
	ReservationNo int              `gorm:"not null" json:"reservationNo"`
}
