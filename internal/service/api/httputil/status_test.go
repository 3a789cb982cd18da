package httputil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	apperrors "github.com/darkkaiser/webapp-server/internal/pkg/errors"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"echo.HTTPError", echo.NewHTTPError(http.StatusTeapot, "teapot"), http.StatusTeapot},
		{"래핑된 echo.HTTPError", fmt.Errorf("wrapped: %w", echo.ErrNotFound), http.StatusNotFound},
		{"일반 에러", errors.New("boom"), http.StatusInternalServerError},
		{"Unknown", apperrors.New(apperrors.Unknown, "x"), http.StatusInternalServerError},
		{"Internal", apperrors.New(apperrors.Internal, "x"), http.StatusInternalServerError},
		{"System", apperrors.New(apperrors.System, "x"), http.StatusInternalServerError},
		{"InvalidInput", apperrors.New(apperrors.InvalidInput, "x"), http.StatusBadRequest},
		{"Unauthorized", apperrors.New(apperrors.Unauthorized, "x"), http.StatusUnauthorized},
		{"Forbidden", apperrors.New(apperrors.Forbidden, "x"), http.StatusForbidden},
		{"NotFound", apperrors.New(apperrors.NotFound, "x"), http.StatusNotFound},
		{"Conflict", apperrors.New(apperrors.Conflict, "x"), http.StatusConflict},
		{"Timeout", apperrors.New(apperrors.Timeout, "x"), http.StatusGatewayTimeout},
		{"Unavailable", apperrors.New(apperrors.Unavailable, "x"), http.StatusServiceUnavailable},
		{"래핑된 AppError", fmt.Errorf("ctx: %w", apperrors.New(apperrors.Unavailable, "x")), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, StatusCode(tt.err))
		})
	}
}
