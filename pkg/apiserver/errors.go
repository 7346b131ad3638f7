package apiserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/scoir/canis-exchange/pkg/datastore"
	"github.com/scoir/canis-exchange/pkg/indy"
	"github.com/scoir/canis-exchange/pkg/pending"
	"github.com/scoir/canis-exchange/pkg/presentproof"
	"github.com/scoir/canis-exchange/pkg/schema"
	"github.com/scoir/canis-exchange/pkg/ursa"
)

type errorResponse struct {
	Error string `json:"error"`
}

var statusCodes = []struct {
	target error
	code   int
}{
	{datastore.ErrNotFound, http.StatusNotFound},
	{pending.ErrNotFound, http.StatusNotFound},
	{indy.ErrNotFound, http.StatusNotFound},
	{pending.ErrDuplicate, http.StatusConflict},
	{schema.ErrMalformed, http.StatusBadRequest},
	{schema.ErrMissingField, http.StatusBadRequest},
	{schema.ErrUnknownMessageType, http.StatusBadRequest},
	{ursa.ErrUnrepresentable, http.StatusBadRequest},
	{presentproof.ErrUnsupported, http.StatusBadRequest},
	{presentproof.ErrNoCandidate, http.StatusUnprocessableEntity},
}

func statusOf(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}

	for _, sc := range statusCodes {
		if errors.Is(err, sc.target) {
			return sc.code
		}
	}

	return http.StatusInternalServerError
}

func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := statusOf(err)
		msg := err.Error()
		var he *echo.HTTPError
		if errors.As(err, &he) {
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		}

		entry := logger.WithError(err).WithField("path", c.Path()).WithField("status", code)
		if code >= http.StatusInternalServerError {
			entry.Error("admin request failed")
		} else {
			entry.Debug("admin request rejected")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, &errorResponse{Error: msg})
		}
		if err != nil {
			e.Logger.Error(err)
		}
	}
}

func badRequest(msg string) error {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}
