package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-profiler/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	health *handlers.HealthHandler,
	resumes *handlers.ResumesHandler,
	users *handlers.UsersHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	rg := v1.Group("/resumes", authMW)
	rg.Post("/", resumes.Upload)
	rg.Get("/", resumes.List)
	rg.Get("/:id", resumes.Get)
	rg.Delete("/:id", resumes.Delete)
	rg.Post("/:id/extract", resumes.Extract)
	rg.Get("/:id/profile", resumes.Profile)

	ug := v1.Group("/users", authMW)
	ug.Get("/:id/profile", users.GetProfile)
}
