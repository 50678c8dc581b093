package validate

import (
	"catering_manager/model"
	"catering_manager/utils"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePaymentInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Cannot parse request: %s", err.Error()),
			})
		}

		input.Method = utils.NormalizeEnum(input.Method)

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdatePaymentStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		no, err := c.ParamsInt(key)
		if err != nil || no <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid payment number",
			})
		}

		var input model.UpdatePaymentStatusInput
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

		input.Status = utils.NormalizeEnum(input.Status)

		c.Locals("paymentNo", no)
		c.Locals("input", input)
		return c.Next()
	}
}
