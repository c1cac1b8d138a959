package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/setup-status", handler.SetupStatus)
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Post("", handler.CreateProfile)
	profile.Get("", handler.GetProfile)

	plan := api.Group("/plan", handler.AuthRequired)
	plan.Get("", handler.GetCurrentPlan)
	plan.Get("/revisions", handler.GetPlanRevisions)

	checkins := api.Group("/checkins", handler.AuthRequired)
	checkins.Post("", handler.SubmitCheckin)
	checkins.Get("", handler.GetCheckins)
	checkins.Get("/export.csv", handler.ExportCheckinsCSV)
}
