package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/user-directory/internal/interfaces/http"
	"github.com/jhoicas/user-directory/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// RequireConfirmation
// ──────────────────────────────────────────────────────────────────────────────

// buildConfirmApp expone la respuesta del Confirmer que dejó el middleware.
func buildConfirmApp() *fiber.App {
	app := fiber.New()
	app.Delete("/confirm", apphttp.RequireConfirmation(), func(c *fiber.Ctx) error {
		cf := apphttp.GetConfirmer(c)
		if cf == nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		ok, err := cf.Confirm(context.Background(), "¿seguro?")
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"confirmed": ok})
	})
	return app
}

func confirmed(t *testing.T, app *fiber.App, target, header string) bool {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	if header != "" {
		req.Header.Set(apphttp.ConfirmHeader, header)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["confirmed"]
}

func TestRequireConfirmation_QueryYCabecera(t *testing.T) {
	app := buildConfirmApp()

	assert.True(t, confirmed(t, app, "/confirm?confirm=true", ""))
	assert.True(t, confirmed(t, app, "/confirm", "yes"))
	assert.True(t, confirmed(t, app, "/confirm", "YES"))
}

func TestRequireConfirmation_SinRespuestaCancela(t *testing.T) {
	app := buildConfirmApp()

	assert.False(t, confirmed(t, app, "/confirm", ""))
	assert.False(t, confirmed(t, app, "/confirm?confirm=false", ""))
	assert.False(t, confirmed(t, app, "/confirm", "no"))
}

func TestGetConfirmer_SinMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Nil(t, apphttp.GetConfirmer(c))
		return c.SendStatus(fiber.StatusNoContent)
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequestLogger
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestLogger_RegistraRequestID(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.FromZerolog(zerolog.New(&buf))

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(apphttp.RequestLogger(lg))
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/missing", entry["path"])
	assert.EqualValues(t, 404, entry["status"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "http", entry["component"])
}
