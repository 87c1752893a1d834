package restapi

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/andreyxaxa/GreenPass-Analyzer/config"
	_ "github.com/andreyxaxa/GreenPass-Analyzer/docs"
	v1 "github.com/andreyxaxa/GreenPass-Analyzer/internal/controller/restapi/v1"
	"github.com/andreyxaxa/GreenPass-Analyzer/internal/infrastructure/metrics"
	"github.com/andreyxaxa/GreenPass-Analyzer/internal/usecase"
	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
)

// @title GreenPass Analyzer
// @version 1.0.0
// @host localhost:8080
// @BasePath /
func NewRouter(app *fiber.App, cfg *config.Config, gp usecase.GreenPassUseCase, m *metrics.Metrics, l logger.Interface) {
	// Middlewares
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))
	app.Use(observe(m, l))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(ctx *fiber.Ctx, e interface{}) {
			l.Error(fmt.Sprintf("restapi - recover - %s %s: panic: %v\n%s", ctx.Method(), ctx.Path(), e, debug.Stack()))
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions}, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// K8s liveness
	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.Status(http.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	// Prometheus metrics
	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))
	}

	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// Routers
	v1.NewGreenPassRoutes(app, gp, m, l)
}

// observe counts requests by matched route and writes an access log line.
func observe(m *metrics.Metrics, l logger.Interface) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			status = http.StatusInternalServerError

			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		m.ObserveRequest(ctx.Method(), ctx.Route().Path, status)
		l.Debug("restapi - %s %s - %d", ctx.Method(), ctx.Path(), status)

		return err
	}
}
