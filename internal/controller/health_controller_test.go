package controller

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"minddock/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingPinger struct {
	calls int
	err   error
}

func (p *countingPinger) PingContext(context.Context) error {
	p.calls++
	return p.err
}

func probe(t *testing.T, app *fiber.App) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestHealthCachesSuccess(t *testing.T) {
	pinger := &countingPinger{}
	app := fiber.New()
	NewHealthController(pinger, logger.NewNopLogger()).RegisterRoutes(app)

	for i := 0; i < 3; i++ {
		status, body := probe(t, app)
		assert.Equal(t, fiber.StatusOK, status)
		assert.JSONEq(t, `{"status":"ok"}`, body)
	}
	assert.Equal(t, 1, pinger.calls)
}

func TestHealthDoesNotCacheFailure(t *testing.T) {
	pinger := &countingPinger{err: errors.New("database is locked")}
	app := fiber.New()
	NewHealthController(pinger, logger.NewNopLogger()).RegisterRoutes(app)

	status, body := probe(t, app)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.JSONEq(t, `{"status":"unavailable"}`, body)

	pinger.err = nil
	status, _ = probe(t, app)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 2, pinger.calls)
}
