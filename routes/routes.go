// path: routes/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Kausheya2006/RaiseUrVoice/controllers"
	"github.com/Kausheya2006/RaiseUrVoice/middleware"
)

// Register attaches all endpoints to the app. Paths follow the legacy web
// frontend so existing forms keep working.
func Register(app *fiber.App, h *controllers.Handler) {
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Post("/report", h.HandlePostReport)
	app.Get("/view-reports", h.HandleListReports)
	app.Get("/reports/:id/images/:index", h.HandleReportImage)
	app.Get("/graphical-analysis", h.HandleAnalysis)

	app.Get("/authorities", h.HandleListAuthorities)
	app.Get("/view-authorities", h.HandleListAuthorities)

	auth := middleware.OperatorAuth(h.Verifier())
	mod := app.Group("/authorities-modify")
	mod.Post("/login", h.HandleLogin)
	mod.Post("/add", auth, h.HandleAddAuthority)
	mod.Post("/update", auth, h.HandleUpdateScore)
}
