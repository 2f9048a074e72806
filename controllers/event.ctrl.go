package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/uepb/eventos.go/lib/responses"
	"github.com/uepb/eventos.go/lib/service"
)

// EventController : Event CRUD controller struct
type EventController struct {
	svc *service.EventService
}

func NewEventController(svc *service.EventService) *EventController {
	return &EventController{svc: svc}
}

type EventRequestBody struct {
	Name        *FieldValue `json:"name" validate:"required"`
	Date        *FieldValue `json:"date" validate:"required"`
	Location    *FieldValue `json:"location" validate:"required"`
	Description *FieldValue `json:"description" validate:"required"`
}

func (body *EventRequestBody) input() service.EventInput {
	return service.EventInput{
		Name:        body.Name.StringPtr(),
		Date:        body.Date.StringPtr(),
		Location:    body.Location.StringPtr(),
		Description: body.Description.StringPtr(),
	}
}

// ListEvents godoc
// @Summary      List events
// @Description  Returns every event ordered by date
// @Produce      json
// @Tags         Events
// @Success      200  {array}   models.Event
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /api/eventos [get]
func (controller *EventController) ListEvents(c echo.Context) error {
	events, err := controller.svc.ListEvents(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}

// CreateEvent godoc
// @Summary      Create an event
// @Description  Creates an event. All four fields must be present, description may be empty.
// @Accept       json
// @Produce      json
// @Tags         Events
// @Param        event  body      EventRequestBody  true  "Event"
// @Success      201    {object}  models.Event
// @Failure      400    {object}  responses.ErrorResponse
// @Failure      500    {object}  responses.ErrorResponse
// @Router       /api/eventos [post]
func (controller *EventController) CreateEvent(c echo.Context) error {
	var body EventRequestBody

	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load create event request body: %v", err)
		return responses.IncompleteDataError.Send(c)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid create event request body error: %v", err)
		return responses.IncompleteDataError.Send(c)
	}

	event, err := controller.svc.CreateEvent(c.Request().Context(), body.input())
	if errors.Is(err, service.ErrIncompleteEvent) {
		return responses.IncompleteDataError.Send(c)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary      Update an event
// @Description  Overwrites all four fields of an event
// @Accept       json
// @Produce      json
// @Tags         Events
// @Param        id     path      int               true  "Event ID"
// @Param        event  body      EventRequestBody  true  "Event"
// @Success      200    {object}  models.Event
// @Failure      400    {object}  responses.ErrorResponse
// @Failure      404    {object}  responses.ErrorResponse
// @Failure      500    {object}  responses.ErrorResponse
// @Router       /api/eventos/{id} [put]
func (controller *EventController) UpdateEvent(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	var body EventRequestBody
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load update event request body: %v", err)
		return responses.BadRequestError.Send(c)
	}

	// missing keys are not validated here and surface as a server error
	event, err := controller.svc.UpdateEvent(c.Request().Context(), id, body.input())
	if errors.Is(err, service.ErrEventNotFound) {
		return responses.EventNotFoundError.Send(c)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary      Delete an event
// @Produce      json
// @Tags         Events
// @Param        id   path      int  true  "Event ID"
// @Success      200  {object}  responses.MessageResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /api/eventos/{id} [delete]
func (controller *EventController) DeleteEvent(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return err
	}

	err = controller.svc.DeleteEvent(c.Request().Context(), id)
	if errors.Is(err, service.ErrEventNotFound) {
		return responses.EventNotFoundError.Send(c)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &responses.EventDeletedMessage)
}

// only unsigned integer ids match the route
func eventID(c echo.Context) (int64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil {
		return 0, echo.ErrNotFound
	}
	return int64(id), nil
}
