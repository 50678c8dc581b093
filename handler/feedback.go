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

// CreateFeedback records a rating from a customer, optionally tied to one of
// their completed reservations.
func CreateFeedback(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input := c.Locals("input").(model.CreateFeedbackInput)

	feedback := model.Feedback{
		CustomerId: customer.ID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	if input.ReservationNo != nil {
		var reservation model.Reservation
		if err := database.DB.Where("reservation_no = ? AND customer_id = ?", *input.ReservationNo, customer.ID).
			First(&reservation).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.RESERVATION_NOT_FOUND, err)
		}
		if reservation.Status != constants.RESERVATION_COMPLETED {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Feedback is only accepted on completed reservations", errors.New("reservation not completed"))
		}
		feedback.ReservationId = &reservation.ID
	}

	if err := database.DB.Create(&feedback).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, feedback)
}

// DeleteFeedbacks removes a batch of feedback entries.
func DeleteFeedbacks(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Delete(&model.Feedback{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}

// GetFeedbacks lists all feedback for staff review.
func GetFeedbacks(c *fiber.Ctx) error {
	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not staff"))
	}

	var feedbacks model.Feedbacks
	if err := database.DB.Preload("Customer").
		Order("created_at desc").Find(&feedbacks).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, feedbacks)
}
