package helpers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/httpserver/helpers"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  any
	}{
		{"http error", echo.NewHTTPError(http.StatusTooManyRequests, "slow down"), 429, "slow down"},
		{"not found", domain.Errorf(domain.ErrNotFound, "Tour with ID x not found"), 404, "Tour with ID x not found"},
		{"bare sentinel", domain.ErrConflict, 409, "Conflict"},
		{"invalid", domain.Errorf(domain.ErrInvalidInput, "bad status"), 400, "bad status"},
		{"unauthorized", domain.Errorf(domain.ErrUnauthorized, "Invalid credentials"), 401, "Invalid credentials"},
		{"forbidden", domain.ErrForbidden, 403, "Forbidden"},
		{"unknown", errors.New("pq: connection refused"), 500, "Internal server error"},
		{"validation", validation.Errors{"email": errors.New("must be a valid email address"), "name": errors.New("cannot be blank")}, 400,
			[]string{"email: must be a valid email address", "name: cannot be blank"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := helpers.StatusFor(tc.err)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.msg, msg)
		})
	}
}

func TestErrorHandler_RendersBody(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = helpers.ErrorHandler(nil)
	e.GET("/x", func(c echo.Context) error { return domain.Errorf(domain.ErrNotFound, "Service not found") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body helpers.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 404, body.StatusCode)
	assert.Equal(t, "Service not found", body.Message)
	assert.Equal(t, "Not Found", body.Error)
}

func TestListParamsFromQuery(t *testing.T) {
	e := echo.New()
	parse := func(query string) (domain.ListParams, error) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/items?"+query, nil), httptest.NewRecorder())
		return helpers.ListParamsFromQuery(c)
	}

	p, err := parse("")
	require.NoError(t, err)
	assert.False(t, p.Paginated())

	p, err = parse("page=3&limit=20")
	require.NoError(t, err)
	assert.Equal(t, domain.ListParams{Page: 3, Limit: 20}, p)

	p, err = parse("limit=5")
	require.NoError(t, err)
	limit, offset := p.Window()
	assert.Equal(t, 5, limit)
	assert.Equal(t, 0, offset)

	for _, bad := range []string{"page=0", "limit=-1", "page=abc"} {
		_, err = parse(bad)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he, bad)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	}
}

func TestGetJWTTokenFromContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, err := helpers.GetJWTTokenFromContext(c)
	require.Error(t, err)

	req.Header.Set("Authorization", "Basic abc")
	_, err = helpers.GetJWTTokenFromContext(c)
	require.Error(t, err)

	req.Header.Set("Authorization", "Bearer abc.def")
	tok, err := helpers.GetJWTTokenFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, "abc.def", tok)

	helpers.SetToken(c, "from-context")
	tok, err = helpers.GetJWTTokenFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, "from-context", tok)
}
