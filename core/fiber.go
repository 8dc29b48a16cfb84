package core

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mr-procrastinator/defi-idea-analyse/pkg/analysis"
)

type analyzeRequest struct {
	Message string `json:"message"`
}

func SetupFiberApp(analyzer *analysis.Analyzer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "defi-idea-analyse",
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "data": nil})
	})

	app.Post("/analyze", func(c *fiber.Ctx) error {
		var req analyzeRequest
		if err := c.BodyParser(&req); err != nil || req.Message == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing message field"})
		}

		report, err := analyzer.ProcessInvestmentIdea(c.Context(), req.Message)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"analysis": report})
	})

	return app
}

func ShutdownFiberApp(app *fiber.App) {
	_ = app.Shutdown()
}
