package responses

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestClientHTTPErrorsNotAllowedForSentry(t *testing.T) {
	notFound := echo.NewHTTPError(http.StatusNotFound)

	isAllowed := isErrAllowedForSentry(notFound)
	assert.False(t, isAllowed)
}

func TestServerHTTPErrorsAllowedForSentry(t *testing.T) {
	unavailable := echo.NewHTTPError(http.StatusServiceUnavailable)

	isAllowed := isErrAllowedForSentry(unavailable)
	assert.True(t, isAllowed)
}

func TestNonHTTPErrorsAllowedForSentry(t *testing.T) {
	err := errors.New("random error")

	isAllowed := isErrAllowedForSentry(err)
	assert.True(t, isAllowed)
}

func TestHTTPErrorHandlerGenericError(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	HTTPErrorHandler(errors.New("disk full"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := map[string]string{}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, map[string]string{"erro": "Internal Server Error"}, body)
}

func TestHTTPErrorHandlerKeepsEchoStatus(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/nope", nil), rec)

	HTTPErrorHandler(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := map[string]string{}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "Not Found", body["erro"])
}

func TestErrorResponseSend(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	assert.NoError(t, IncompleteDataError.Send(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"erro":"Dados incompletos"}`, rec.Body.String())
}
