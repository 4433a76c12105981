package api

import (
	"expenso/docs"
	"expenso/internal/api/handlers"
	"expenso/pkg/auth"
	"expenso/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

const healthMessage = "Expense tracker API is running"

func SetupRouter(
	authHandler *handlers.AuthHandler,
	expenseHandler *handlers.ExpenseHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Importing docs registers the swagger spec through its init().
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health endpoints (public)
	app.Get("/", health)
	app.Get("/test", health)

	// Auth routes (public)
	app.Post("/signup", authHandler.Signup)

	// Protected routes
	authRequired := middleware.AuthMiddleware(jwtManager, appLogger)
	app.Post("/expense", authRequired, expenseHandler.Create)
	app.Post("/add-expense", authRequired, expenseHandler.CreateManual)
	app.Get("/expenses", authRequired, expenseHandler.List)
	app.Get("/expenses/summary", authRequired, expenseHandler.Summary)
	app.Delete("/expense/:id", authRequired, expenseHandler.Delete)

	return app
}

func health(c *fiber.Ctx) error {
	return c.SendString(healthMessage)
}
