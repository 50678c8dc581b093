package handler

import (
	"catering_manager/constants"
	"catering_manager/database"
	"catering_manager/helper"
	"catering_manager/model"
	"catering_manager/utils"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreatePayment opens a payment against the customer's accepted reservation.
// GCash payments also get a QR code carrying the payment reference.
func CreatePayment(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input := c.Locals("input").(model.CreatePaymentInput)

	payment, err := helper.CreatePayment(database.DB, *customer, input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	response := fiber.Map{"payment": payment}
	if payment.Method == constants.METHOD_GCASH {
		content := fmt.Sprintf("%s|%s|%.2f", os.Getenv("GCASH_MERCHANT_ID"), payment.PaymentCode, payment.Amount)
		png, err := utils.GenerateQRCode(content, 256)
		if err == nil {
			response["qrCode"] = base64.StdEncoding.EncodeToString(png)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, response)
}

// GetPayments is the staff ledger view.
func GetPayments(c *fiber.Ctx) error {
	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not staff"))
	}

	var filter model.FilterPayment
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	query := database.DB.Model(&model.Payment{})
	if filter.Status != nil {
		query = query.Where("status = ?", utils.NormalizeEnum(*filter.Status))
	}
	if filter.Method != nil {
		query = query.Where("method = ?", utils.NormalizeEnum(*filter.Method))
	}

	var totalCount int64
	query.Count(&totalCount)

	var payments model.Payments
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("created_at desc").Find(&payments).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       payments,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// GetMyPayments lists payments on the customer's own reservations.
func GetMyPayments(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var payments model.Payments
	if err := database.DB.
		Joins("JOIN reservations ON reservations.id = payments.reservation_id").
		Where("reservations.customer_id = ?", customer.ID).
		Order("payments.created_at desc").Find(&payments).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payments)
}

// UpdatePaymentStatus is the staff decision: confirm, fail or refund.
func UpdatePaymentStatus(c *fiber.Ctx) error {
	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not staff"))
	}

	no := c.Locals("paymentNo").(int)
	input := c.Locals("input").(model.UpdatePaymentStatusInput)

	var payment model.Payment
	if err := database.DB.Where("payment_no = ?", no).First(&payment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_NOT_FOUND, err)
	}

	if err := helper.UpdatePaymentStatus(database.DB, &payment, input.Status, time.Now()); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payment)
}

// UploadPaymentProof attaches a GCash proof screenshot to the customer's own
// pending payment.
func UploadPaymentProof(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	no, err := c.ParamsInt("paymentNo")
	if err != nil || no <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var payment model.Payment
	if err := database.DB.Preload("Reservation").Where("payment_no = ?", no).First(&payment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PAYMENT_NOT_FOUND, err)
	}
	if payment.Reservation.CustomerId != customer.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_OWNER, errors.New("not the paying customer"))
	}
	if payment.Status != constants.PAYMENT_PENDING {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only pending payments accept a proof", errors.New("payment not pending"))
	}

	file, err := c.FormFile("proof")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Proof file is required", err)
	}

	url, err := helper.UploadPaymentProof(c.Context(), file, payment.PaymentCode)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&payment).Update("proof_url", url).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"proofUrl": url})
}
