package helpers

import (
	"errors"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    any    `json:"message"`
	Error      string `json:"error"`
}

// StatusFor maps an error to a status code and a caller-safe message.
// Validation failures yield a list of "field: problem" strings.
func StatusFor(err error) (int, any) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, he.Message
	}

	var ve validation.Errors
	if errors.As(err, &ve) {
		return http.StatusBadRequest, fieldMessages(ve)
	}

	var de *domain.Error
	msg := "Internal server error"
	if errors.As(err, &de) {
		msg = de.Message
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, orDefault(de, msg, "Not found")
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, orDefault(de, msg, "Conflict")
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, orDefault(de, msg, "Bad request")
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, orDefault(de, msg, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, orDefault(de, msg, "Forbidden")
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func orDefault(de *domain.Error, msg, def string) string {
	if de == nil {
		return def
	}
	return msg
}

func fieldMessages(ve validation.Errors) []string {
	out := make([]string, 0, len(ve))
	for field, err := range ve {
		out = append(out, field+": "+err.Error())
	}
	sort.Strings(out)
	return out
}

// ErrorHandler renders errors as ErrorBody and logs server-side failures.
func ErrorHandler(logger *logrus.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := StatusFor(err)
		if code >= http.StatusInternalServerError && logger != nil {
			logger.WithFields(logrus.Fields{
				"method": c.Request().Method,
				"path":   c.Path(),
			}).WithError(err).Error("request failed")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, ErrorBody{StatusCode: code, Message: msg, Error: http.StatusText(code)})
		}
		if writeErr != nil && logger != nil {
			logger.WithError(writeErr).Warn("failed to write error response")
		}
	}
}
