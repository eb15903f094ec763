package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"product-manager/internal/apperr"
	"product-manager/internal/messages"
)

type errorResponse struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHTTPErrorHandler renders every error as the {status, message, timestamp}
// envelope. Domain errors resolve their message key through the catalog;
// anything unrecognized collapses to a 500 without leaking internals.
func NewHTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := messages.Render("internal.error")

		var ae *apperr.Error
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ae):
			status = ae.Status
			message = messages.Render(ae.Key, ae.Args...)
		case errors.As(err, &he):
			status = he.Code
			if s, ok := he.Message.(string); ok {
				message = s
			} else {
				message = http.StatusText(he.Code)
			}
		default:
			log.Error("unhandled error", "error", err)
		}

		resp := errorResponse{Status: status, Message: message, Timestamp: time.Now().UTC()}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, resp)
	}
}
