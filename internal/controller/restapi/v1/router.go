package v1

import (
	"github.com/andreyxaxa/GreenPass-Analyzer/internal/infrastructure"
	"github.com/andreyxaxa/GreenPass-Analyzer/internal/usecase"
	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

func NewGreenPassRoutes(router fiber.Router, gp usecase.GreenPassUseCase, m infrastructure.AnalysisRecorder, l logger.Interface) {
	r := &V1{gp: gp, metrics: m, logger: l}

	{
		// API
		analyzer := router.Group("/analyzer/greenPass")
		analyzer.Post("/analysis/perform", r.analyze)

		// UI
		router.Get("/", r.showUI)
	}
}
