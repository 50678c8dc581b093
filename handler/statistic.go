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

// GetAdminStats is the dashboard header: today's intake against yesterday's,
// plus the standing queue of pending work.
func GetAdminStats(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	var createdToday, createdYesterday int64
	db.Model(&model.Reservation{}).Where("created_at >= ?", todayStart).Count(&createdToday)
	db.Model(&model.Reservation{}).
		Where("created_at >= ? AND created_at < ?", yesterdayStart, todayStart).
		Count(&createdYesterday)

	var revenueToday, revenueYesterday float64
	db.Model(&model.Payment{}).
		Where("status = ? AND paid_at >= ?", constants.PAYMENT_PAID, todayStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenueToday)
	db.Model(&model.Payment{}).
		Where("status = ? AND paid_at >= ? AND paid_at < ?", constants.PAYMENT_PAID, yesterdayStart, todayStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenueYesterday)

	var pendingReservations, pendingPayments, upcomingEvents int64
	db.Model(&model.Reservation{}).
		Where("status = ?", constants.RESERVATION_PENDING).Count(&pendingReservations)
	db.Model(&model.Payment{}).
		Where("status = ?", constants.PAYMENT_PENDING).Count(&pendingPayments)
	db.Model(&model.Reservation{}).
		Where("status = ? AND event_date >= ?", constants.RESERVATION_ACCEPTED, todayStart.Format("2006-01-02")).
		Count(&upcomingEvents)

	var totalCustomers int64
	db.Model(&model.Customer{}).Count(&totalCustomers)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"reservationsToday":   createdToday,
		"reservationsGrowth":  utils.CalculateGrowth(float64(createdToday), float64(createdYesterday)),
		"revenueToday":        revenueToday,
		"revenueGrowth":       utils.CalculateGrowth(revenueToday, revenueYesterday),
		"pendingReservations": pendingReservations,
		"pendingPayments":     pendingPayments,
		"upcomingEvents":      upcomingEvents,
		"totalCustomers":      totalCustomers,
	})
}
