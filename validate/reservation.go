package validate

import (
	"catering_manager/model"
	"catering_manager/utils"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// CreateReservation parses and normalizes the booking request. Deep business
// checks (guest range, lead time, product resolution) stay in the engine so
// they run in contract order.
func CreateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReservationInput
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

		// Casing is normalized here once; business logic compares exact strings.
		input.TimeSlot = utils.NormalizeEnum(input.TimeSlot)

		c.Locals("input", input)
		return c.Next()
	}
}

func EditReservation(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		no, err := c.ParamsInt(key)
		if err != nil || no <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid reservation number",
			})
		}

		var input model.CreateReservationInput
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

		input.TimeSlot = utils.NormalizeEnum(input.TimeSlot)

		c.Locals("reservationNo", no)
		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateReservationStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		no, err := c.ParamsInt(key)
		if err != nil || no <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid reservation number",
			})
		}

		var input model.UpdateReservationStatusInput
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

		c.Locals("reservationNo", no)
		c.Locals("input", input)
		return c.Next()
	}
}

// AvailabilityQuery parses the optional start/end range.
func AvailabilityQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startStr := c.Query("start")
		endStr := c.Query("end")

		if startStr != "" {
			start, err := utils.ParseCustomDate(startStr)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
			}
			c.Locals("start", start.Time)
		}
		if endStr != "" {
			end, err := utils.ParseCustomDate(endStr)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
			}
			c.Locals("end", end.Time)
		}

		return c.Next()
	}
}
