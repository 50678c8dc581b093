package router

import (
	"catering_manager/handler"
	"catering_manager/middleware"
	"catering_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), validate.AdminChangePassword(), handler.AdminChangePassword)
	account.Patch("/:accountId/active", middleware.Protected(), validate.ActiveAccount(), handler.ActiveAccount)

	staff := v1.Group("/staff", logger.New())
	staff.Get("/", middleware.Protected(), handler.GetStaffs)
	staff.Post("/", middleware.Protected(), validate.CreateStaff(), handler.CreateStaff)
	staff.Put("/:staffId", middleware.Protected(), validate.EditStaff("staffId"), handler.EditStaff)
	staff.Patch("/:staffId/active/:isActive", middleware.Protected(), handler.ActiveStaff)

	customer := v1.Group("/customer", logger.New())
	customer.Get("/", middleware.Protected(), handler.GetCustomers)
	customer.Post("/register", validate.RegisterCustomer(), handler.RegisterCustomer)
	customer.Post("/login", handler.CustomerLogin)
	customer.Post("/refresh-token", handler.RefreshCustomerToken)
	customer.Get("/me", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetCurrentCustomer)
	customer.Post("/change-password", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.ChangePasswordCustomer(), handler.ChangePasswordCustomer)
	customer.Post("/forgot-password", validate.ForgetPassword(), handler.ForgotPassword)
	customer.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)
	customer.Get("/:customerId", middleware.Protected(), validate.GetById("customerId"), handler.GetCustomerById)

	category := v1.Group("/category", logger.New())
	category.Get("/", handler.GetCategories)
	category.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)

	product := v1.Group("/product", logger.New())
	product.Get("/", middleware.OptionalJWT(), handler.GetProducts)
	product.Get("/:slug", handler.GetProductBySlug)
	product.Post("/", middleware.Protected(), validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", middleware.Protected(), validate.EditProduct("productId"), handler.EditProduct)
	product.Patch("/:productId/archive/:archived", middleware.Protected(), handler.ArchiveProduct)

	pricing := v1.Group("/pricing", logger.New())
	pricing.Get("/", handler.GetPricing)
	pricing.Put("/", middleware.Protected(), validate.UpdatePricing(), handler.UpdatePricing)

	reservation := v1.Group("/reservation", logger.New())
	reservation.Get("/availability", validate.AvailabilityQuery(), handler.GetAvailableDates)
	reservation.Get("/availability/:month", websocket.New(handler.AvailabilityWebSocket))
	reservation.Post("/resync-booked-dates", middleware.Protected(), handler.ResyncBookedDates)
	reservation.Get("/", middleware.Protected(), handler.GetReservations)
	reservation.Get("/my", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetMyReservations)
	reservation.Post("/", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.CreateReservation(), handler.CreateReservation)
	reservation.Get("/:reservationNo", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetReservationByNo)
	reservation.Put("/:reservationNo", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.EditReservation("reservationNo"), handler.EditReservation)
	reservation.Patch("/:reservationNo/status", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.UpdateReservationStatus("reservationNo"), handler.UpdateReservationStatus)

	payment := v1.Group("/payment", logger.New())
	payment.Get("/", middleware.Protected(), handler.GetPayments)
	payment.Get("/my", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetMyPayments)
	payment.Post("/", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.CreatePayment(), handler.CreatePayment)
	payment.Patch("/:paymentNo/status", middleware.Protected(), validate.UpdatePaymentStatus("paymentNo"), handler.UpdatePaymentStatus)
	payment.Post("/:paymentNo/proof", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.UploadPaymentProof)

	report := v1.Group("/report", logger.New())
	report.Get("/monthly", middleware.Protected(), handler.GetMonthlyReport)
	report.Get("/yearly", middleware.Protected(), handler.GetYearlyReport)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetAdminStats)

	feedback := v1.Group("/feedback", logger.New())
	feedback.Get("/", middleware.Protected(), handler.GetFeedbacks)
	feedback.Post("/", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.CreateFeedback(), handler.CreateFeedback)
	feedback.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteFeedbacks)
}
