package helper

import (
	"catering_manager/apperr"
	"catering_manager/constants"
	"catering_manager/model"
	"catering_manager/utils"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/gorm"
)

// CheckAcceptance enforces the per-date acceptance rules against the other
// reservations already ACCEPTED on that date: at most 2 per day, and no two
// may share a time slot.
func CheckAcceptance(existingAccepted []model.Reservation, slot string) error {
	if len(existingAccepted) >= constants.MAX_ACCEPTED_PER_DAY {
		return apperr.CapacityExceeded("date already has %d accepted reservations", constants.MAX_ACCEPTED_PER_DAY)
	}
	for _, r := range existingAccepted {
		if r.TimeSlot == slot {
			return apperr.SlotConflict("time slot %s is already taken on this date", slot)
		}
	}
	return nil
}

// ValidateTransition is the closed transition table. A request that targets
// the state the record is already in reports noop=true so racing admins get
// an idempotent success instead of an error.
func ValidateTransition(current, target string, byStaff, byOwner bool) (noop bool, err error) {
	if current == target {
		return true, nil
	}

	switch target {
	case constants.RESERVATION_ACCEPTED, constants.RESERVATION_DECLINED:
		if !byStaff {
			return false, apperr.InvalidTransition("only staff can accept or decline a reservation")
		}
		if current != constants.RESERVATION_PENDING {
			return false, apperr.InvalidTransition("cannot move a %s reservation to %s", current, target)
		}
	case constants.RESERVATION_CANCELLED:
		if !byOwner {
			return false, apperr.InvalidTransition("only the booking customer can cancel")
		}
		if current != constants.RESERVATION_PENDING {
			return false, apperr.InvalidTransition("only pending reservations can be cancelled")
		}
	case constants.RESERVATION_COMPLETED:
		if !byStaff {
			return false, apperr.InvalidTransition("only staff can complete a reservation")
		}
		if current != constants.RESERVATION_ACCEPTED {
			return false, apperr.InvalidTransition("only accepted reservations can be completed")
		}
	default:
		return false, apperr.InvalidTransition("cannot move a %s reservation to %s", current, target)
	}

	return false, nil
}

// TransitionStatus applies a validated status change. Acceptance serializes
// on a per-date advisory lock so the capacity/slot check and the write are
// atomic with respect to other acceptances for the same date; losers get a
// clean conflict error and may retry.
func TransitionStatus(db *gorm.DB, reservation *model.Reservation, target string, byStaff, byOwner bool, now time.Time) error {
	target = utils.NormalizeEnum(target)
	if !utils.IsValidValueOfConstant(target, constants.ReservationStatuses) {
		return apperr.Validation("unknown status %q", target)
	}

	noop, err := ValidateTransition(reservation.Status, target, byStaff, byOwner)
	if err != nil {
		return err
	}
	if noop {
		return nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		switch target {
		case constants.RESERVATION_ACCEPTED:
			dateKey := reservation.EventDate.String()
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", dateKey).Error; err != nil {
				return apperr.Internal(constants.ERROR_INTERNAL_ERROR)
			}

			var existing []model.Reservation
			if err := tx.Where("event_date = ? AND status = ? AND id <> ?",
				reservation.EventDate, constants.RESERVATION_ACCEPTED, reservation.ID).
				Find(&existing).Error; err != nil {
				return apperr.Internal(constants.ERROR_INTERNAL_ERROR)
			}
			if err := CheckAcceptance(existing, reservation.TimeSlot); err != nil {
				return err
			}

			reservation.Status = constants.RESERVATION_ACCEPTED
			reservation.PaymentRequired = true
			reservation.AcceptedAt = &now

			// The booked-dates projection is maintained on the same write
			// path that changes the status, and stays rebuildable.
			booked := model.BookedDate{
				Date:          reservation.EventDate,
				TimeSlot:      reservation.TimeSlot,
				ReservationNo: reservation.ReservationNo,
			}
			if err := tx.Where(model.BookedDate{Date: booked.Date, TimeSlot: booked.TimeSlot}).
				FirstOrCreate(&booked).Error; err != nil {
				return apperr.Internal(constants.ERROR_INTERNAL_ERROR)
			}

		case constants.RESERVATION_DECLINED:
			reservation.Status = constants.RESERVATION_DECLINED

		case constants.RESERVATION_CANCELLED:
			reservation.Status = constants.RESERVATION_CANCELLED
			reservation.CancelledAt = &now

		case constants.RESERVATION_COMPLETED:
			reservation.Status = constants.RESERVATION_COMPLETED
			reservation.CompletedAt = &now
			if err := tx.Where("reservation_no = ?", reservation.ReservationNo).
				Delete(&model.BookedDate{}).Error; err != nil {
				return apperr.Internal(constants.ERROR_INTERNAL_ERROR)
			}
		}

		if err := tx.Save(reservation).Error; err != nil {
			return apperr.Internal(constants.ERROR_INTERNAL_ERROR)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if target == constants.RESERVATION_ACCEPTED {
		notifyPaymentRequired(db, reservation)
		PublishAvailabilityChange(reservation.EventDate, reservation.TimeSlot, target)
	}

	return nil
}

// notifyPaymentRequired is fire-and-forget: a failed notification is logged
// and never rolls back the acceptance.
func notifyPaymentRequired(db *gorm.DB, reservation *model.Reservation) {
	var customer model.Customer
	if err := db.First(&customer, reservation.CustomerId).Error; err != nil {
		log.Printf("payment-required notification skipped, customer %d not loaded: %v", reservation.CustomerId, err)
		return
	}

	utils.SendPaymentRequiredEmail(customer.Email, utils.PaymentRequiredData{
		ContactName:   reservation.ContactName,
		ReservationNo: reservation.ReservationNo,
		EventDate:     reservation.EventDate.String(),
		TimeSlot:      reservation.TimeSlot,
		TotalAmount:   reservation.TotalAmount,
		DetailLink:    fmt.Sprintf("%s/reservations/%d", os.Getenv("APP_URL"), reservation.ReservationNo),
	})
}
