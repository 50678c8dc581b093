package handler

import (
	"catering_manager/constants"
	"catering_manager/database"
	"catering_manager/helper"
	"catering_manager/model"
	"catering_manager/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreateReservation books a PENDING reservation for the logged-in customer.
func CreateReservation(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input := c.Locals("input").(model.CreateReservationInput)

	reservation, err := helper.CreateReservation(database.DB, *customer, input, time.Now())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, reservation)
}

// GetReservations is the staff list with filters and pagination.
func GetReservations(c *fiber.Ctx) error {
	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not staff"))
	}

	var filter model.FilterReservation
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	query := database.DB.Model(&model.Reservation{}).
		Preload("Customer").
		Preload("Selections.Category").
		Preload("Selections.Product").
		Preload("AddOns.Product")

	if filter.SearchKey != "" {
		query = query.Where("contact_name ILIKE ? OR phone_number ILIKE ?",
			"%"+filter.SearchKey+"%", "%"+filter.SearchKey+"%")
	}
	if filter.Status != nil {
		query = query.Where("status = ?", utils.NormalizeEnum(*filter.Status))
	}
	if filter.From != nil {
		query = query.Where("event_date >= ?", filter.From.String())
	}
	if filter.To != nil {
		query = query.Where("event_date <= ?", filter.To.String())
	}

	var totalCount int64
	query.Count(&totalCount)

	var reservations model.Reservations
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("event_date asc, id asc").Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       reservations,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// GetMyReservations lists the logged-in customer's own reservations.
func GetMyReservations(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var reservations model.Reservations
	if err := database.DB.
		Preload("Selections.Category").
		Preload("Selections.Product").
		Preload("AddOns.Product").
		Where("customer_id = ?", customer.ID).
		Order("created_at desc").Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservations)
}

func loadReservationByNo(no int) (*model.Reservation, error) {
	var reservation model.Reservation
	err := database.DB.
		Preload("Customer").
		Preload("Selections.Category").
		Preload("Selections.Product").
		Preload("AddOns.Product").
		Where("reservation_no = ?", no).First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// GetReservationByNo is visible to staff and to the booking customer.
func GetReservationByNo(c *fiber.Ctx) error {
	no, err := c.ParamsInt("reservationNo")
	if err != nil || no <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	reservation, err := loadReservationByNo(no)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation does not exist", err)
	}

	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	customer, _ := c.Locals("customer").(*model.Customer)
	isOwner := customer != nil && customer.ID == reservation.CustomerId
	if !isAdmin && !isStaff && !isOwner {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, errors.New("not the booking customer"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

// EditReservation lets the owner rework a still-PENDING reservation. The
// total is recomputed with the current pricing settings.
func EditReservation(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	no := c.Locals("reservationNo").(int)
	input := c.Locals("input").(model.CreateReservationInput)

	reservation, err := loadReservationByNo(no)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation does not exist", err)
	}
	if reservation.CustomerId != customer.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, errors.New("not the booking customer"))
	}

	if err := helper.EditReservation(database.DB, reservation, input, time.Now()); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

// UpdateReservationStatus drives the lifecycle: staff accept/decline/complete,
// the owner cancels. Re-issuing the current status is an idempotent success.
func UpdateReservationStatus(c *fiber.Ctx) error {
	no := c.Locals("reservationNo").(int)
	input := c.Locals("input").(model.UpdateReservationStatusInput)

	reservation, err := loadReservationByNo(no)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation does not exist", err)
	}

	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	byStaff := isAdmin || isStaff
	customer, _ := c.Locals("customer").(*model.Customer)
	byOwner := customer != nil && customer.ID == reservation.CustomerId

	if !byStaff && !byOwner {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, errors.New("not allowed"))
	}

	if err := helper.TransitionStatus(database.DB, reservation, input.Status, byStaff, byOwner, time.Now()); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

// GetAvailableDates answers the public calendar query: which dates in the
// range already carry accepted bookings, and on which slots.
func GetAvailableDates(c *fiber.Ctx) error {
	var start, end *time.Time
	if v, ok := c.Locals("start").(time.Time); ok {
		start = &v
	}
	if v, ok := c.Locals("end").(time.Time); ok {
		end = &v
	}

	booked, err := helper.GetBookedDates(database.DB, start, end)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booked)
}

// ResyncBookedDates rebuilds the booked-dates projection on demand.
func ResyncBookedDates(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	if err := helper.RebuildBookedDates(database.DB); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "booked dates rebuilt"})
}
