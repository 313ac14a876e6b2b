package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"tiendapanel/internal/adapter/api"
)

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	healthHandler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}

	if assert.NoError(t, healthHandler(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ok")
	}
}

func TestValidatorRejectsBadEmail(t *testing.T) {
	v := api.NewValidator()

	type subscribeRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	assert.Error(t, v.Validate(&subscribeRequest{Email: "not-an-email"}))
	assert.NoError(t, v.Validate(&subscribeRequest{Email: "cliente@example.com"}))
}
