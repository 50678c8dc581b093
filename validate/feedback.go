package validate

import (
	"catering_manager/model"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func CreateFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFeedbackInput
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

		c.Locals("input", input)
		return c.Next()
	}
}
