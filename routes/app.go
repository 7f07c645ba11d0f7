// path: routes/app.go
package routes

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/Kausheya2006/RaiseUrVoice/controllers"
	"github.com/Kausheya2006/RaiseUrVoice/middleware"
	"github.com/Kausheya2006/RaiseUrVoice/models"
)

type AppConfig struct {
	BodyLimit   int
	CORSOrigins []string
}

// NewApp builds the fiber app with the middleware stack and all routes.
// Immutable is required: repositories may keep the strings handlers pass in.
func NewApp(cfg AppConfig, h *controllers.Handler, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "raiseurvoice",
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
		Immutable:             true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))

	origins := strings.Join(cfg.CORSOrigins, ", ")
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "*",
		MaxAge:       int((12 * time.Hour).Seconds()),
	}))

	Register(app, h)
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(models.ErrorResp{OK: false, Error: err.Error()})
}
