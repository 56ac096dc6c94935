package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	"github.com/artem13815/expense-assistant/api/http/handlers"
	"github.com/artem13815/expense-assistant/api/http/middleware"
	"github.com/artem13815/expense-assistant/api/http/presenter"
)

const msgNotFound = "Endpoint not found"

type Options struct {
	CORSAllowOrigins string
	Swagger          bool
}

// NewApp creates the Fiber app with the shared middleware stack.
func NewApp(log *zap.Logger, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "expense-assistant",
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})
	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())
	origins := opts.CORSAllowOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{AllowOrigins: origins}))
	return app
}

// Register wires all HTTP routes onto given Fiber app. The catch-all 404
// handler is added last.
func Register(app *fiber.App, health *handlers.HealthHandler, expenses *handlers.ExpenseHandler, opts Options) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Post("/analyze", expenses.Analyze)
	app.Post("/add-expense", expenses.AddExpense)

	if opts.Swagger {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	app.Use(func(c *fiber.Ctx) error {
		return presenter.Error(c, fiber.StatusNotFound, msgNotFound)
	})
}

func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code == fiber.StatusNotFound {
			return presenter.Error(c, fe.Code, msgNotFound)
		}
		return presenter.Error(c, fe.Code, fe.Message)
	}
	return presenter.ErrorWithDetails(c, fiber.StatusInternalServerError, "Internal server error", err.Error())
}
