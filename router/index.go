package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"cinema_booking/handler"
	"cinema_booking/middleware"
	"cinema_booking/validate"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.RegisterUser(), handler.RegisterUser)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/verify-reset-code", validate.VerifyResetCode(), handler.VerifyResetCode)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	user := v1.Group("/user", logger.New())
	user.Get("/me", middleware.Protected(), handler.GetCurrentUser)
	user.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)
	user.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetUsers)
	user.Patch("/:userId/active", middleware.Protected(), middleware.AdminOnly(), validate.GetById("userId"), handler.ToggleUserActive)
	user.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteUsers)

	movie := v1.Group("/movie", logger.New())
	movie.Get("/", middleware.OptionalJWT(), handler.GetMovies)
	movie.Get("/:slug", middleware.OptionalJWT(), handler.GetMovieBySlug)
	movie.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateMovie(), handler.CreateMovie)
	movie.Put("/:movieId", middleware.Protected(), middleware.AdminOnly(), validate.EditMovie("movieId"), handler.EditMovie)
	movie.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteMovies)

	v1.Post("/cloudinary-signature", middleware.Protected(), middleware.AdminOnly(), handler.GetPosterUploadSignature)

	hall := v1.Group("/hall", logger.New())
	hall.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetHalls)
	hall.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateHall(), handler.CreateHall)
	hall.Put("/seat/:seatId", middleware.Protected(), middleware.AdminOnly(), validate.EditSeat("seatId"), handler.EditSeat)
	hall.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteHalls)

	screening := v1.Group("/screening", logger.New())
	screening.Get("/", middleware.OptionalJWT(), handler.GetScreenings)
	screening.Get("/:screeningId/seats", validate.GetById("screeningId"), handler.GetScreeningSeats)
	screening.Get("/:screeningId/live", websocket.New(handler.SeatMapSocket))
	screening.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateScreening(), handler.CreateScreening)
	screening.Put("/:screeningId", middleware.Protected(), middleware.AdminOnly(), validate.EditScreening("screeningId"), handler.EditScreening)
	screening.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteScreenings)

	booking := v1.Group("/booking", logger.New())
	booking.Post("/", middleware.OptionalJWT(), validate.BookSeats(), handler.BookSeats)
	booking.Get("/ticket/:code/qr", middleware.Protected(), handler.GetTicketQR)
	booking.Post("/ticket/:code/checkin", middleware.Protected(), middleware.AdminOnly(), handler.CheckinTicket)

	order := v1.Group("/order", logger.New())
	order.Get("/mine", middleware.Protected(), handler.GetMyOrders)
	order.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderById)
	order.Post("/:orderId/items", middleware.Protected(), validate.AddOrderItem("orderId"), handler.AddOrderItem)
	order.Post("/:orderId/pay", middleware.Protected(), validate.GetById("orderId"), handler.PayOrder)
	order.Post("/:orderId/cancel", middleware.Protected(), validate.GetById("orderId"), handler.CancelOrder)
	order.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetOrders)

	product := v1.Group("/product", logger.New())
	product.Get("/", handler.GetProducts)
	product.Get("/all", middleware.Protected(), middleware.AdminOnly(), handler.GetAllProducts)
	product.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", middleware.Protected(), middleware.AdminOnly(), validate.EditProduct("productId"), handler.EditProduct)
	product.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteProducts)

	contact := v1.Group("/contact", logger.New())
	contact.Post("/", validate.CreateContact(), handler.CreateContact)
	contact.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetContacts)
	contact.Patch("/:contactId/read", middleware.Protected(), middleware.AdminOnly(), validate.GetById("contactId"), handler.MarkContactRead)
	contact.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteContacts)

	faq := v1.Group("/faq", logger.New())
	faq.Get("/", handler.GetFAQs)
	faq.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateFAQ(), handler.CreateFAQ)
	faq.Put("/:faqId", middleware.Protected(), middleware.AdminOnly(), validate.EditFAQ("faqId"), handler.EditFAQ)
	faq.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteFAQs)

	// Server-to-server
	v1.Post("/telegram/webhook", handler.TelegramWebhook)
}
