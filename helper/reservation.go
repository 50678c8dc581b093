package helper

import (
	"catering_manager/apperr"
	"catering_manager/constants"
	"catering_manager/model"
	"catering_manager/utils"
	"errors"
	"time"

	"gorm.io/gorm"
)

// GetPricingSettings loads the singleton coefficient row.
func GetPricingSettings(db *gorm.DB) (model.PricingSettings, error) {
	var settings model.PricingSettings
	if err := db.First(&settings).Error; err != nil {
		return settings, apperr.Internal("pricing settings unavailable")
	}
	return settings, nil
}

// ValidateReservationInput runs the creation checks in contract order.
// Contact name and phone come from the account, not the body, so they are
// checked by the caller. Pure over (input, now) for testability.
func ValidateReservationInput(input model.CreateReservationInput, now time.Time) error {
	if input.TimeSlot == "" || input.EventDate.IsZero() || input.NumberOfGuests == 0 {
		return apperr.Validation("numberOfGuests, timeSlot and eventDate are required")
	}
	if !utils.IsValidValueOfConstant(input.TimeSlot, constants.TimeSlots) {
		return apperr.Validation("unknown time slot %q", input.TimeSlot)
	}

	if input.NumberOfGuests < constants.MIN_GUESTS || input.NumberOfGuests > constants.MAX_GUESTS {
		return apperr.Range("number of guests must be between %d and %d", constants.MIN_GUESTS, constants.MAX_GUESTS)
	}

	if input.EventDate.DaysUntil(now) < constants.MIN_LEAD_TIME_DAYS {
		return apperr.LeadTime("event date must be at least %d days from today", constants.MIN_LEAD_TIME_DAYS)
	}

	if input.Venue.Municipality == "" || input.Venue.Barangay == "" {
		return apperr.Validation("venue municipality and barangay are required")
	}
	if len(input.Venue.Street) < constants.MIN_STREET_LENGTH {
		return apperr.Validation("venue street address must be at least %d characters", constants.MIN_STREET_LENGTH)
	}

	if len(input.Selections) == 0 {
		return apperr.Validation("at least one category selection is required")
	}

	return nil
}

// ResolveProducts turns category/product references into persisted join rows,
// failing with the missing id when a reference does not resolve. Archived
// products are treated as missing.
func ResolveProducts(tx *gorm.DB, input model.CreateReservationInput) ([]model.ReservationSelection, []model.ReservationAddOn, error) {
	selections := make([]model.ReservationSelection, 0, len(input.Selections))
	for categoryName, productId := range input.Selections {
		var category model.Category
		if err := tx.Where("name = ? AND active = true", categoryName).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apperr.NotFound("unknown category %q", categoryName)
			}
			return nil, nil, apperr.Internal(constants.ERROR_INTERNAL_ERROR)
		}

		var product model.Product
		if err := tx.Where("id = ? AND archived = false", productId).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apperr.NotFound("product %d not found", productId)
			}
			return nil, nil, apperr.Internal(constants.ERROR_INTERNAL_ERROR)
		}
		if product.CategoryId != category.ID {
			return nil, nil, apperr.Validation("product %d does not belong to category %q", productId, categoryName)
		}

		selections = append(selections, model.ReservationSelection{
			CategoryId: category.ID,
			ProductId:  product.ID,
		})
	}

	addOns := make([]model.ReservationAddOn, 0, len(input.AddOns))
	for i, productId := range input.AddOns {
		var product model.Product
		if err := tx.Where("id = ? AND archived = false", productId).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, apperr.NotFound("product %d not found", productId)
			}
			return nil, nil, apperr.Internal(constants.ERROR_INTERNAL_ERROR)
		}
		addOns = append(addOns, model.ReservationAddOn{
			ProductId: product.ID,
			Position:  i,
		})
	}

	return selections, addOns, nil
}

// NextReservationNo draws from a database sequence, so concurrent creations
// can never be handed the same number.
func NextReservationNo(tx *gorm.DB) (int, error) {
	var no int
	if err := tx.Raw("SELECT nextval('reservation_no_seq')").Scan(&no).Error; err != nil {
		return 0, apperr.Internal(constants.ERROR_INTERNAL_ERROR)
	}
	return no, nil
}

// CreateReservation validates, prices and persists a PENDING reservation for
// the given customer.
func CreateReservation(db *gorm.DB, customer model.Customer, input model.CreateReservationInput, now time.Time) (*model.Reservation, error) {
	contactName := customer.FullName()
	if contactName == "" || customer.Phone == "" {
		return nil, apperr.Validation("account is missing a contact name or phone number")
	}

	if err := ValidateReservationInput(input, now); err != nil {
		return nil, err
	}

	var reservation *model.Reservation
	err := db.Transaction(func(tx *gorm.DB) error {
		selections, addOns, err := ResolveProducts(tx, input)
		if err != nil {
			return err
		}

		settings, err := GetPricingSettings(tx)
		if err != nil {
			return err
		}

		total := ComputeTotal(input.NumberOfGuests, len(addOns), settings)
		if err := CheckTotal(total); err != nil {
			return err
		}

		no, err := NextReservationNo(tx)
		if err != nil {
			return err
		}

		reservation = &model.Reservation{
			ReservationNo:  no,
			CustomerId:     customer.ID,
			ContactName:    contactName,
			PhoneNumber:    customer.Phone,
			NumberOfGuests: input.NumberOfGuests,
			TimeSlot:       input.TimeSlot,
			EventDate:      input.EventDate,
			Venue: model.Venue{
				Municipality: input.Venue.Municipality,
				Barangay:     input.Venue.Barangay,
				Street:       input.Venue.Street,
				LotBlock:     input.Venue.LotBlock,
				Landmark:     input.Venue.Landmark,
				PostalCode:   input.Venue.PostalCode,
				Notes:        input.Venue.Notes,
			},
			Selections:   selections,
			AddOns:       addOns,
			SpecialNotes: input.SpecialNotes,
			TotalAmount:  total,
			Status:       constants.RESERVATION_PENDING,
		}

		if err := tx.Create(reservation).Error; err != nil {
			return apperr.Internal(constants.ERROR_INTERNAL_ERROR)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

// EditReservation replaces the editable fields of a PENDING reservation owned
// by the customer and reprices it with the same rule used at creation.
func EditReservation(db *gorm.DB, reservation *model.Reservation, input model.CreateReservationInput, now time.Time) error {
	if reservation.Status != constants.RESERVATION_PENDING {
		return apperr.InvalidTransition("only pending reservations can be edited")
	}

	if err := ValidateReservationInput(input, now); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		selections, addOns, err := ResolveProducts(tx, input)
		if err != nil {
			return err
		}

		settings, err := GetPricingSettings(tx)
		if err != nil {
			return err
		}

		total := ComputeTotal(input.NumberOfGuests, len(addOns), settings)
		if err := CheckTotal(total); err != nil {
			return err
		}

		if err := tx.Where("reservation_id = ?", reservation.ID).Delete(&model.ReservationSelection{}).Error; err != nil {
			return apperr.Internal(constants.ERROR_INTERNAL_ERROR)
		}
		if err := tx.Where("reservation_id = ?", reservation.ID).Delete(&model.ReservationAddOn{}).Error; err != nil {
			return apperr.Internal(constants.ERROR_INTERNAL_ERROR)
		}

		reservation.NumberOfGuests = input.NumberOfGuests
		reservation.TimeSlot = input.TimeSlot
		reservation.EventDate = input.EventDate
		reservation.Venue = model.Venue{
			Municipality: input.Venue.Municipality,
			Barangay:     input.Venue.Barangay,
			Street:       input.Venue.Street,
			LotBlock:     input.Venue.LotBlock,
			Landmark:     input.Venue.Landmark,
			PostalCode:   input.Venue.PostalCode,
			Notes:        input.Venue.Notes,
		}
		reservation.SpecialNotes = input.SpecialNotes
		reservation.TotalAmount = total
		reservation.Selections = selections
		reservation.AddOns = addOns

		if err := tx.Save(reservation).Error; err != nil {
			return apperr.Internal(constants.ERROR_INTERNAL_ERROR)
		}
		return nil
	})
}
