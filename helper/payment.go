package helper

import (
	"catering_manager/apperr"
	"catering_manager/constants"
	"catering_manager/model"
	"catering_manager/utils"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NextPaymentNo draws from the payment sequence; same duplicate-free
// guarantee as reservation numbers.
func NextPaymentNo(tx *gorm.DB) (int, error) {
	var no int
	if err := tx.Raw("SELECT nextval('payment_no_seq')").Scan(&no).Error; err != nil {
		return 0, apperr.Internal(constants.ERROR_INTERNAL_ERROR)
	}
	return no, nil
}

// CreatePayment opens a PENDING ledger entry against an accepted, unpaid
// reservation owned by the customer. A cash payment also starts PENDING:
// handing over cash still needs explicit staff confirmation.
func CreatePayment(db *gorm.DB, customer model.Customer, input model.CreatePaymentInput) (*model.Payment, error) {
	var reservation model.Reservation
	if err := db.Where("reservation_no = ? AND customer_id = ?", input.ReservationNo, customer.ID).
		First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("reservation %d not found", input.ReservationNo)
		}
		return nil, apperr.Internal(constants.ERROR_INTERNAL_ERROR)
	}

	if reservation.Status != constants.RESERVATION_ACCEPTED {
		return nil, apperr.InvalidTransition("reservation %d is not accepted", input.ReservationNo)
	}
	if reservation.IsPaid {
		return nil, apperr.InvalidTransition("reservation %d is already paid", input.ReservationNo)
	}

	var payment *model.Payment
	err := db.Transaction(func(tx *gorm.DB) error {
		no, err := NextPaymentNo(tx)
		if err != nil {
			return err
		}

		payment = &model.Payment{
			PaymentNo:     no,
			ReservationId: reservation.ID,
			PaymentCode:   fmt.Sprintf("PAY-%s", uuid.NewString()[:8]),
			Amount:        reservation.TotalAmount,
			Method:        input.Method,
			Status:        constants.PAYMENT_PENDING,
		}
		if err := tx.Create(payment).Error; err != nil {
			return apperr.Internal(constants.ERROR_INTERNAL_ERROR)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// ValidatePaymentTransition is the ledger's closed table: PENDING can settle
// or fail, only PAID can be refunded. Same-state re-issue is a no-op success.
func ValidatePaymentTransition(current, target string) (noop bool, err error) {
	if current == target {
		return true, nil
	}

	switch target {
	case constants.PAYMENT_PAID, constants.PAYMENT_FAILED:
		if current != constants.PAYMENT_PENDING {
			return false, apperr.InvalidTransition("cannot move a %s payment to %s", current, target)
		}
	case constants.PAYMENT_REFUNDED:
		if current != constants.PAYMENT_PAID {
			return false, apperr.InvalidTransition("only paid payments can be refunded")
		}
	default:
		return false, apperr.InvalidTransition("cannot move a %s payment to %s", current, target)
	}

	return false, nil
}

// UpdatePaymentStatus applies a staff decision on a payment. Marking PAID
// also flags the owning reservation as paid, in the same transaction.
func UpdatePaymentStatus(db *gorm.DB, payment *model.Payment, target string, now time.Time) error {
	target = utils.NormalizeEnum(target)
	if !utils.IsValidValueOfConstant(target, constants.PaymentStatuses) {
		return apperr.Validation("unknown payment status %q", target)
	}

	noop, err := ValidatePaymentTransition(payment.Status, target)
	if err != nil {
		return err
	}
	if noop {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		payment.Status = target
		if target == constants.PAYMENT_PAID {
			payment.PaidAt = &now
		}
		if err := tx.Save(payment).Error; err != nil {
			return apperr.Internal(constants.ERROR_INTERNAL_ERROR)
		}

		switch target {
		case constants.PAYMENT_PAID:
			if err := tx.Model(&model.Reservation{}).
				Where("id = ?", payment.ReservationId).
				Update("is_paid", true).Error; err != nil {
				return apperr.Internal(constants.ERROR_INTERNAL_ERROR)
			}
		case constants.PAYMENT_REFUNDED:
			if err := tx.Model(&model.Reservation{}).
				Where("id = ?", payment.ReservationId).
				Update("is_paid", false).Error; err != nil {
				return apperr.Internal(constants.ERROR_INTERNAL_ERROR)
			}
		}
		return nil
	})
}
