package transport

import (
	"github.com/labstack/echo/v4"
	"github.com/uepb/eventos.go/controllers"
	"github.com/uepb/eventos.go/lib/service"
)

func RegisterEventEndpoints(svc *service.EventService, e *echo.Echo, logMw echo.MiddlewareFunc) {
	eventCtrl := controllers.NewEventController(svc)

	api := e.Group("/api", logMw)
	api.GET("/eventos", eventCtrl.ListEvents)
	api.POST("/eventos", eventCtrl.CreateEvent)
	api.PUT("/eventos/:id", eventCtrl.UpdateEvent)
	api.DELETE("/eventos/:id", eventCtrl.DeleteEvent)

	e.GET("/health", controllers.NewHealthController(svc).Check)
}
