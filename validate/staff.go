package validate

import (
	"catering_manager/model"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func CreateStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateStaffInput
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

func EditStaff(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt(key)
		if err != nil || id <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid staff id",
			})
		}

		var input model.EditStaffInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Cannot parse request: %s", err.Error()),
			})
		}

		c.Locals("staffId", id)
		c.Locals("input", input)
		return c.Next()
	}
}
