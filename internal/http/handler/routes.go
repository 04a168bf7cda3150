package handler

import (
	"database/sql"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"newsletterapi/internal/config"
	"newsletterapi/internal/service"
)

// NewApp creates the Fiber app with the standardized error handler.
// With prettyJSON responses are indented, as the original service did.
func NewApp(prettyJSON bool) *fiber.App {
	cfg := fiber.Config{
		AppName:      "newsletterapi",
		ErrorHandler: ErrorHandler(),
	}
	if prettyJSON {
		cfg.JSONEncoder = func(v interface{}) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	return fiber.New(cfg)
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc service.NewsletterService, mode config.ErrorMode) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/", Home())

	app.Get("/newsletters", ListNewsletters(svc))
	app.Post("/newsletters", CreateNewsletter(svc, mode))

	// The constraint turns non-integer and negative ids into a route mismatch (404).
	app.Get("/newsletters/:id<int;min(0)>", GetNewsletter(svc, mode))
}
