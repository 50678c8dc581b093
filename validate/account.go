package validate

import (
	"catering_manager/constants"
	"catering_manager/model"
	"catering_manager/utils"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAccountInput
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

		input.Role = utils.NormalizeEnum(input.Role)
		if !utils.IsValidValueOfConstant(input.Role, constants.Roles) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("unknown role %q", input.Role),
			})
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func AdminChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AdminChangePassword
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Cannot parse request: %s", err.Error()),
			})
		}

		if input.AccountId == 0 || input.NewPassword == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "accountId and newPassword are required",
			})
		}
		if input.NewPassword != input.RepeatPassword {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "passwords do not match",
			})
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func ActiveAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("accountId")
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		c.Locals("accountId", id)
		return c.Next()
	}
}
