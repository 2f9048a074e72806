package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/uepb/eventos.go/db"
	"github.com/uepb/eventos.go/docs"
	"github.com/uepb/eventos.go/lib"
	"github.com/uepb/eventos.go/lib/service"
	"github.com/uepb/eventos.go/lib/transport"
	"github.com/uepb/eventos.go/rabbitmq"
	ddEcho "gopkg.in/DataDog/dd-trace-go.v1/contrib/labstack/echo.v4"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

// @title        eventos.go
// @version      1.0.0
// @description  CRUD API for event records.

// @license.name  MIT

// @BasePath  /
// @schemes   http https
func main() {
	// Load configruation from .env and environment variables
	c, envLoaded, err := service.LoadConfig(".env")
	if err != nil {
		log.Fatal(err)
	}
	if !envLoaded {
		fmt.Println("Failed to load .env file")
	}

	// Setup logging to STDOUT or a configrued log file
	logger := lib.Logger(c.LogFilePath, c.LogLevel)

	// Open a DB connection based on the configured DATABASE_URI
	dbConn, err := db.Open(c)
	if err != nil {
		logger.Fatalf("Error initializing db connection: %v", err)
	}
	defer dbConn.Close()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Duration(c.DatabaseTimeout)*time.Second)
	if err = db.Init(startupCtx, dbConn, c.SeedData); err != nil {
		logger.Fatalf("Error initializing database schema: %v", err)
	}
	cancelStartup()

	// Setup exception tracking with Sentry if configured
	// sentry init needs to happen before the echo middlewares are added
	if c.SentryDSN != "" {
		if err = sentry.Init(sentry.ClientOptions{
			Dsn:              c.SentryDSN,
			EnableTracing:    c.SentryTracesSampleRate > 0,
			TracesSampleRate: c.SentryTracesSampleRate,
		}); err != nil {
			logger.Errorf("sentry init error: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	svc := &service.EventService{
		Config: c,
		DB:     dbConn,
		Logger: logger,
	}

	// If no RABBITMQ_URI was provided we will not attempt to create a client
	// No change notifications will be published in this case.
	if c.RabbitMQUri != "" {
		amqpClient, err := rabbitmq.DialAMQP(c.RabbitMQUri, rabbitmq.WithAmqpLogger(logger))
		if err != nil {
			logger.Fatal(err)
		}

		rabbitmqClient, err := rabbitmq.NewClient(amqpClient,
			rabbitmq.WithLogger(logger),
			rabbitmq.WithEventExchange(c.RabbitMQEventExchange),
		)
		if err != nil {
			logger.Fatal(err)
		}

		// close the connection gently at the end of the runtime
		defer rabbitmqClient.Close()
		svc.Notifier = rabbitmqClient
	}

	//init echo server
	e := transport.InitEcho(c, logger)
	//if Datadog is configured, add datadog middleware
	if c.DatadogAgentUrl != "" {
		tracer.Start(tracer.WithAgentAddr(c.DatadogAgentUrl), tracer.WithService("eventos.go"))
		defer tracer.Stop()
		e.Use(ddEcho.Middleware(ddEcho.WithServiceName("eventos.go")))
	}

	//Start Prometheus server if necessary
	var echoPrometheus *echo.Echo
	if c.EnablePrometheus {
		echoPrometheus = transport.StartPrometheusEcho(logger, svc, e)
	}

	transport.RegisterEventEndpoints(svc, e, transport.CreateLoggingMiddleware(logger))

	//Swagger API spec
	docs.SwaggerInfo.Host = c.Host
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Start server
	go func() {
		logger.Infof("Serving events on :%d, store %s", c.Port, c.DatabaseUri)
		if err := e.Start(fmt.Sprintf(":%v", c.Port)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
	if echoPrometheus != nil {
		if err := echoPrometheus.Shutdown(shutdownCtx); err != nil {
			e.Logger.Fatal(err)
		}
	}
	logger.Info("eventos.go exiting gracefully. Goodbye.")
}
