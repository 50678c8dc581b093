package handler

import (
	"catering_manager/constants"
	"catering_manager/database"
	"catering_manager/helper"
	"catering_manager/model"
	"catering_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetStaffs(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var filter model.FilterStaff
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	db := database.DB
	query := db.Model(&model.Staff{}).Preload("Account")
	if filter.SearchKey != "" {
		query = query.Where("full_name ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var totalCount int64
	query.Count(&totalCount)

	var staffs model.Staffs
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("created_at desc").Find(&staffs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       staffs,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// CreateStaff opens the staff account and the profile in one transaction.
func CreateStaff(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("input").(model.CreateStaffInput)

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

	var staff model.Staff
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		account := model.Account{
			Username: input.Username,
			Password: hash,
			Active:   true,
			Role:     constants.ROLE_STAFF,
		}
		if err := tx.Create(&account).Error; err != nil {
			return err
		}

		staff = model.Staff{
			AccountId: account.ID,
			FullName:  input.FullName,
			Phone:     input.Phone,
			Position:  input.Position,
			IsActive:  true,
		}
		return tx.Create(&staff).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, staff)
}

func EditStaff(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	staffId := c.Locals("staffId").(int)
	input := c.Locals("input").(model.EditStaffInput)

	var staff model.Staff
	if err := database.DB.First(&staff, staffId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Staff does not exist", err)
	}

	if err := copier.CopyWithOption(&staff, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Save(&staff).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, staff)
}

// ActiveStaff toggles a staff profile (and its account) on or off.
func ActiveStaff(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	staffId, err := c.ParamsInt("staffId")
	if err != nil || staffId <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	isActive := c.Params("isActive") == "true"

	var staff model.Staff
	if err := database.DB.First(&staff, staffId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Staff does not exist", err)
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&staff).Update("is_active", isActive).Error; err != nil {
			return err
		}
		return tx.Model(&model.Account{}).Where("id = ?", staff.AccountId).Update("active", isActive).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"isActive": isActive})
}
