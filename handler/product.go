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
)

// GetCategories lists active categories with their non-archived products,
// the shape the reservation form consumes.
func GetCategories(c *fiber.Ctx) error {
	var categories []model.Category
	if err := database.DB.Where("active = ?", true).
		Preload("Products", "archived = ?", false).
		Order("id asc").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("input").(model.CreateCategoryInput)

	var count int64
	database.DB.Model(&model.Category{}).Where("name = ?", input.Name).Count(&count)
	if count > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Category already exists", errors.New("duplicate category name"), "name")
	}

	category := model.Category{
		Name:        input.Name,
		Description: input.Description,
		Active:      true,
	}
	if err := database.DB.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func GetProducts(c *fiber.Ctx) error {
	var filter model.FilterProduct
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	}

	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)

	query := database.DB.Model(&model.Product{}).Preload("Category")
	if filter.SearchKey != "" {
		query = query.Where("name ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.CategoryId != nil {
		query = query.Where("category_id = ?", *filter.CategoryId)
	}
	if isAdmin || isStaff {
		if filter.Archived != nil {
			query = query.Where("archived = ?", *filter.Archived)
		}
	} else {
		// customers never see archived items
		query = query.Where("archived = ?", false)
	}

	var totalCount int64
	query.Count(&totalCount)

	var products model.Products
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).
		Order("id asc").Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       products,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetProductBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")
	if slugParam == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, errors.New("missing slug"))
	}

	var product model.Product
	if err := database.DB.Preload("Category").
		Where("slug = ?", slugParam).First(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product does not exist", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func CreateProduct(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("input").(model.CreateProductInput)

	var category model.Category
	if err := database.DB.First(&category, input.CategoryId).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Category does not exist", err, "categoryId")
	}

	product := model.Product{
		CategoryId:  input.CategoryId,
		Name:        input.Name,
		Slug:        helper.GenerateUniqueProductSlug(database.DB, input.Name),
		Description: input.Description,
	}
	if err := database.DB.Create(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

func EditProduct(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	productId := c.Locals("productId").(int)
	input := c.Locals("input").(model.EditProductInput)

	var product model.Product
	if err := database.DB.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product does not exist", err)
	}

	if input.CategoryId != nil {
		var category model.Category
		if err := database.DB.First(&category, *input.CategoryId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Category does not exist", err, "categoryId")
		}
	}

	renamed := input.Name != nil && *input.Name != product.Name
	if err := copier.CopyWithOption(&product, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if renamed {
		product.Slug = helper.GenerateUniqueProductSlug(database.DB, product.Name)
	}

	if err := database.DB.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// ArchiveProduct hides a product from new reservations without touching
// the reservation rows that already reference it.
func ArchiveProduct(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	productId, err := c.ParamsInt("productId")
	if err != nil || productId <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}
	archived := c.Params("archived") == "true"

	var product model.Product
	if err := database.DB.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product does not exist", err)
	}

	if err := database.DB.Model(&product).Update("archived", archived).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"archived": archived})
}
