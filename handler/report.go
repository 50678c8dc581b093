package handler

import (
	"catering_manager/constants"
	"catering_manager/database"
	"catering_manager/helper"
	"catering_manager/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

const reportCacheTTL = 24 * time.Hour

// cachedReport serves a report from Redis when possible, otherwise builds it
// and caches the result. Reports over closed periods rarely change, so a day
// of staleness is acceptable.
func cachedReport[T any](c *fiber.Ctx, cacheKey string, build func() (*T, error)) error {
	ctx := context.Background()

	if database.Redis != nil {
		if raw, err := database.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var cached T
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return utils.SuccessResponse(c, fiber.StatusOK, cached)
			}
		}
	}

	report, err := build()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if database.Redis != nil {
		if raw, err := json.Marshal(report); err == nil {
			database.Redis.Set(ctx, cacheKey, raw, reportCacheTTL)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, report)
}

func GetMonthlyReport(c *fiber.Ctx) error {
	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not staff"))
	}

	year := c.QueryInt("year", time.Now().Year())
	month := c.QueryInt("month", int(time.Now().Month()))
	if month < 1 || month > 12 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, errors.New("month must be between 1 and 12"))
	}

	key := fmt.Sprintf("report:monthly:%d-%02d", year, month)
	return cachedReport(c, key, func() (*utils.MonthlyReport, error) {
		return utils.GetMonthlyReport(database.DB, year, month)
	})
}

func GetYearlyReport(c *fiber.Ctx) error {
	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_STAFF, errors.New("not staff"))
	}

	year := c.QueryInt("year", time.Now().Year())

	key := fmt.Sprintf("report:yearly:%d", year)
	return cachedReport(c, key, func() (*utils.YearlyReport, error) {
		return utils.GetYearlyReport(database.DB, year)
	})
}
