package helper

import (
	"catering_manager/apperr"
	"catering_manager/model"
)

// BasePriceForGuests floors at the base package price: small parties still pay
// the flat minimum, extra guests pay per head.
func BasePriceForGuests(numberOfGuests int, settings model.PricingSettings) float64 {
	base := settings.BasePrice()
	if numberOfGuests <= settings.BasePax {
		return base
	}
	return base + float64(numberOfGuests-settings.BasePax)*settings.PricePerHead
}

// ComputeTotal is the whole pricing rule: pure function of guests, add-on
// count and the injected settings so creation and edit always agree.
// Add-ons are catered per head, so each one multiplies by full guest count.
func ComputeTotal(numberOfGuests, addOnCount int, settings model.PricingSettings) float64 {
	addOnsTotal := float64(addOnCount) * float64(numberOfGuests) * settings.AdditionalItemPrice
	return BasePriceForGuests(numberOfGuests, settings) + addOnsTotal
}

// CheckTotal guards the invariant that a computed amount is never negative.
// Cannot trip with sane settings, but admin-editable coefficients make it
// worth a boundary check.
func CheckTotal(total float64) error {
	if total < 0 {
		return apperr.InvalidAmount("computed total amount is negative: %.2f", total)
	}
	return nil
}
