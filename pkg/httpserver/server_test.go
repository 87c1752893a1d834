package httpserver

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andreyxaxa/GreenPass-Analyzer/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewOptions(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)

	s := New(logger.NewWithCore(core),
		Port("8080"),
		Prefork(false),
		ReadTimeout(time.Second),
		WriteTimeout(2*time.Second),
		ShutdownTimeout(4*time.Second),
		BodyLimit(1024),
	)

	assert.Equal(t, ":8080", s.address)
	assert.Equal(t, time.Second, s.readTimeout)
	assert.Equal(t, 2*time.Second, s.writeTimeout)
	assert.Equal(t, 4*time.Second, s.shutdownTimeout)
	assert.Equal(t, 1024, s.bodyLimit)
	assert.Equal(t, 1024, s.App.Config().BodyLimit)
}

func TestNewDefaults(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)

	s := New(logger.NewWithCore(core), BodyLimit(0))

	assert.Equal(t, _defaultAddr, s.address)
	assert.Equal(t, _defaultBodyLimit, s.bodyLimit)
}

func TestAppServesRoutes(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	s := New(logger.NewWithCore(core))

	s.App.Get("/ping", func(ctx *fiber.Ctx) error {
		return ctx.SendString("pong")
	})

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
}

func TestErrorHandlerOption(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)

	s := New(logger.NewWithCore(core),
		BodyLimit(16),
		ErrorHandler(func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return ctx.Status(code).JSON(fiber.Map{"error_code": code})
		}),
	)

	s.App.Post("/upload", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNoContent)
	})

	tests := []struct {
		name   string
		method string
		path   string
		body   []byte
		status int
	}{
		{"not found", http.MethodGet, "/missing", nil, http.StatusNotFound},
		{"body over limit", http.MethodPost, "/upload", bytes.Repeat([]byte("x"), 64), http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.App.Test(httptest.NewRequest(tt.method, tt.path, bytes.NewReader(tt.body)))
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.JSONEq(t, fmt.Sprintf(`{"error_code":%d}`, tt.status), string(body))
		})
	}
}
