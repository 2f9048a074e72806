package responses

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Erro           string `json:"erro"`
	HttpStatusCode int    `json:"-"`
}

type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}

var IncompleteDataError = ErrorResponse{
	Erro:           "Dados incompletos",
	HttpStatusCode: http.StatusBadRequest,
}

var EventNotFoundError = ErrorResponse{
	Erro:           "Evento não encontrado",
	HttpStatusCode: http.StatusNotFound,
}

var BadRequestError = ErrorResponse{
	Erro:           http.StatusText(http.StatusBadRequest),
	HttpStatusCode: http.StatusBadRequest,
}

var GeneralServerError = ErrorResponse{
	Erro:           http.StatusText(http.StatusInternalServerError),
	HttpStatusCode: http.StatusInternalServerError,
}

var EventDeletedMessage = MessageResponse{
	Mensagem: "Evento deletado com sucesso",
}

// Send writes the error with its own status code.
func (e ErrorResponse) Send(c echo.Context) error {
	return c.JSON(e.HttpStatusCode, e)
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, isHTTPError := err.(*echo.HTTPError)
	if isErrAllowedForSentry(err) {
		c.Logger().Error(err)
		if hub := sentryecho.GetHubFromContext(c); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetExtra("RequestID", c.Response().Header().Get(echo.HeaderXRequestID))
				hub.CaptureException(err)
			})
		}
	}
	if isHTTPError {
		if c.Request().Method == http.MethodHead {
			c.NoContent(he.Code)
			return
		}
		c.JSON(he.Code, ErrorResponse{Erro: fmt.Sprint(he.Message)})
		return
	}
	GeneralServerError.Send(c)
}

// client errors raised by echo itself (unknown route, wrong method, rate
// limit) are not worth an exception report
func isErrAllowedForSentry(err error) bool {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code >= http.StatusInternalServerError
	}
	return true
}
