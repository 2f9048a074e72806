package integration_tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/uepb/eventos.go/db"
	"github.com/uepb/eventos.go/db/models"
	"github.com/uepb/eventos.go/lib"
	"github.com/uepb/eventos.go/lib/service"
	"github.com/uepb/eventos.go/lib/transport"
)

type ExpectedEventRequestBody struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type ExpectedErrorResponseBody struct {
	Erro string `json:"erro"`
}

type ExpectedMessageResponseBody struct {
	Mensagem string `json:"mensagem"`
}

func EventTestServiceInit(dir string, notifier service.EventNotifier) (svc *service.EventService, err error) {
	c := &service.Config{
		DatabaseUri:     filepath.Join(dir, "eventos.db"),
		DatabaseTimeout: 10,
		SeedData:        true,
		BodyLimit:       "250K",
	}

	dbConn, err := db.Open(c)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = db.Init(context.Background(), dbConn, c.SeedData); err != nil {
		return nil, fmt.Errorf("failed to init database: %w", err)
	}

	logger := lib.Logger(c.LogFilePath, "error")
	return &service.EventService{
		Config:   c,
		DB:       dbConn,
		Logger:   logger,
		Notifier: notifier,
	}, nil
}

// NewTestEcho wires the same middleware stack and routes as cmd/server.
func NewTestEcho(svc *service.EventService) *echo.Echo {
	e := transport.InitEcho(svc.Config, svc.Logger)
	transport.RegisterEventEndpoints(svc, e, transport.CreateLoggingMiddleware(svc.Logger))
	return e
}

func clearTable(svc *service.EventService, tableName string) error {
	_, err := svc.DB.Exec(fmt.Sprintf("DELETE FROM %s", tableName))
	return err
}

type TestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (suite *TestSuite) doRequest(method, target string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *TestSuite) listEventsReq() []models.Event {
	rec := suite.doRequest(http.MethodGet, "/api/eventos", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	events := []models.Event{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&events))
	return events
}

func (suite *TestSuite) createEventReq(body interface{}) *models.Event {
	rec := suite.doRequest(http.MethodPost, "/api/eventos", body)
	assert.Equal(suite.T(), http.StatusCreated, rec.Code)
	event := &models.Event{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(event))
	return event
}

func (suite *TestSuite) errResponse(rec *httptest.ResponseRecorder, expectedStatus int) *ExpectedErrorResponseBody {
	errorResponse := &ExpectedErrorResponseBody{}
	assert.Equal(suite.T(), expectedStatus, rec.Code)
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(errorResponse))
	return errorResponse
}
