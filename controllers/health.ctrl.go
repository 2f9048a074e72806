package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/uepb/eventos.go/lib/service"
)

type HealthController struct {
	svc *service.EventService
}

func NewHealthController(svc *service.EventService) *HealthController {
	return &HealthController{svc: svc}
}

type HealthResponse struct {
	Result string `json:"result"`
}

// Health godoc
// @Summary      Check system health
// @Description  Pings the event store
// @Produce      json
// @Tags         Health
// @Success      200  {object}  HealthResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /health [get]
func (controller *HealthController) Check(c echo.Context) error {
	if err := controller.svc.Ping(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &HealthResponse{
		Result: "OK",
	})
}
