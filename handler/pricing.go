package handler

import (
	"catering_manager/constants"
	"catering_manager/database"
	"catering_manager/helper"
	"catering_manager/model"
	"catering_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// GetPricing exposes the current pricing settings. Public so the booking
// form can quote before login.
func GetPricing(c *fiber.Ctx) error {
	settings, err := helper.GetPricingSettings(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"basePax":             settings.BasePax,
		"pricePerHead":        settings.PricePerHead,
		"additionalItemPrice": settings.AdditionalItemPrice,
		"basePrice":           settings.BasePrice(),
	})
}

// applyPricingInput writes the set fields onto the settings row.
func applyPricingInput(settings *model.PricingSettings, input model.UpdatePricingInput) {
	if input.BasePax != nil {
		settings.BasePax = *input.BasePax
	}
	if input.PricePerHead != nil {
		settings.PricePerHead = *input.PricePerHead
	}
	if input.AdditionalItemPrice != nil {
		settings.AdditionalItemPrice = *input.AdditionalItemPrice
	}
}

// UpdatePricing changes the singleton pricing row. New rates apply only to
// reservations created afterwards; stored totals are never recomputed.
func UpdatePricing(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("input").(model.UpdatePricingInput)

	settings, err := helper.GetPricingSettings(database.DB)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	applyPricingInput(&settings, input)

	if err := database.DB.Save(&settings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, settings)
}
