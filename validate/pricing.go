package validate

import (
	"catering_manager/model"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func UpdatePricing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdatePricingInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Cannot parse request: %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if input.BasePax == nil && input.PricePerHead == nil && input.AdditionalItemPrice == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "at least one pricing field is required",
			})
		}

		c.Locals("input", input)
		return c.Next()
	}
}
