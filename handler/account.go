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

func GetAccounts(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var filter model.FilterAccount
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	db := database.DB
	query := db.Model(&model.Account{}).Preload("Staff")
	if filter.SearchKey != "" {
		query = query.Where("username ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}

	var totalCount int64
	query.Count(&totalCount)

	var accounts model.Accounts
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("created_at desc").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       accounts,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func Me(c *fiber.Ctx) error {
	accountInfo, _, _ := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	var account model.Account
	if err := database.DB.Preload("Staff").First(&account, accountInfo.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account does not exist", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func CreateAccount(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("input").(model.CreateAccountInput)

	existing, err := helper.GetAccountByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Username already exists", errors.New("username already exists"), "username")
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	account := model.Account{
		Username: input.Username,
		Password: hash,
		Active:   true,
		Role:     input.Role,
	}
	if err := database.DB.Create(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, account)
}

func AdminChangePassword(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("input").(model.AdminChangePassword)

	var account model.Account
	if err := database.DB.First(&account, input.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account does not exist", err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&account).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password updated"})
}

// ActiveAccount toggles an account's active flag.
func ActiveAccount(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	accountId := c.Locals("accountId").(int)

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account does not exist", err)
	}

	if err := database.DB.Model(&account).Update("active", !account.Active).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"active": !account.Active})
}
