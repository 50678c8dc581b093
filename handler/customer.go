package handler

import (
	"catering_manager/constants"
	"catering_manager/database"
	"catering_manager/helper"
	"catering_manager/model"
	"catering_manager/utils"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func GetCustomers(c *fiber.Ctx) error {
	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not staff"))
	}

	var filter model.FilterCustomer
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	db := database.DB
	query := db.Model(&model.Customer{})
	if filter.SearchKey != "" {
		query = query.Where("user_name ILIKE ? OR email ILIKE ?", "%"+filter.SearchKey+"%", "%"+filter.SearchKey+"%")
	}
	if filter.PhoneNumber != "" {
		query = query.Where("phone = ?", filter.PhoneNumber)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var totalCount int64
	query.Count(&totalCount)

	var customers model.Customers
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("created_at desc").Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       customers,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetCustomerById(c *fiber.Ctx) error {
	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not staff"))
	}

	customerId := c.Locals("inputId").(int)

	var customer model.Customer
	if err := database.DB.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func RegisterCustomer(c *fiber.Ctx) error {
	input := c.Locals("input").(model.RegisterCustomerInput)

	emailTaken, err := helper.CheckByEmailCustomer(input.Email, nil)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if emailTaken {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Email already registered", errors.New("email exists"), "email")
	}

	phoneTaken, err := helper.CheckByPhoneNumberCustomer(input.Phone, nil)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if phoneTaken {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Phone number already registered", errors.New("phone exists"), "phone")
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	customer := model.Customer{
		UserName: input.UserName,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: hash,
		IsActive: true,
	}
	if err := database.DB.Create(&customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, customer)
}

func CustomerLogin(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)
	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}
	if loginInput.Email == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("email and password are required"))
	}

	customer, err := helper.GetCustomerByEmail(loginInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Email is not registered", errors.New("email not exists"))
	}
	if !helper.CheckPasswordHash(loginInput.Password, customer.Password) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVALID_PASSWORD, errors.New("password does not match"))
	}
	if !customer.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("inactive customer"))
	}

	tokenClaim := model.TokenClaim{
		CustomerId: customer.ID,
		Username:   customer.UserName,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"tokens": model.TokenData{AccessToken: token, RefreshToken: refreshToken},
		"customer": fiber.Map{
			"id":       customer.ID,
			"username": customer.UserName,
			"email":    customer.Email,
		},
	})
}

func RefreshCustomerToken(c *fiber.Ctx) error {
	type RefreshTokenRequest struct {
		RefreshToken string `json:"refreshToken"`
	}
	var req RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil || req.RefreshToken == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing refresh token", err)
	}

	token, err := helper.ParseToken(req.RefreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	customerId, _ := claims["customerId"].(float64)
	username, _ := claims["username"].(string)
	if customerId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", errors.New("no customer id"))
	}

	newToken, err := helper.GenerateAccessToken(model.TokenClaim{
		CustomerId: uint(customerId),
		Username:   username,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AccessToken: newToken, RefreshToken: req.RefreshToken})
}

func GetCurrentCustomer(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func ChangePasswordCustomer(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	input := c.Locals("input").(model.CustomerChangePassword)

	if !helper.CheckPasswordHash(input.CurrentPassword, customer.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PASSWORD, errors.New("current password does not match"))
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(customer).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password updated"})
}

// ForgotPassword issues a reset token. Always answers success so the
// endpoint cannot be used to probe registered emails.
func ForgotPassword(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ForgotPasswordRequest)

	customer, err := helper.GetCustomerByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "reset link sent if email exists"})
	}

	resetToken := model.PasswordResetToken{
		CustomerId: customer.ID,
		Token:      uuid.NewString(),
		ExpiresAt:  time.Now().Add(30 * time.Minute),
	}
	if err := database.DB.Create(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.SendPasswordResetEmail(customer.Email, utils.PasswordResetData{
		ContactName: customer.FullName(),
		ResetLink:   fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("APP_URL"), resetToken.Token),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "reset link sent if email exists"})
}

func ResetPassword(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ResetPasswordRequest)

	var resetToken model.PasswordResetToken
	if err := database.DB.Where("token = ? AND expires_at > ?", input.Token, time.Now()).
		First(&resetToken).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid or expired reset token", err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&model.Customer{}).
		Where("id = ?", resetToken.CustomerId).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	database.DB.Delete(&resetToken)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password reset"})
}
