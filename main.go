package main

import (
	"log"

	"github.com/eursukkul/reservation-service/config"
	"github.com/eursukkul/reservation-service/internal/handler"
	"github.com/eursukkul/reservation-service/internal/middleware"
	"github.com/eursukkul/reservation-service/internal/repository"
	"github.com/eursukkul/reservation-service/internal/seed"
	"github.com/eursukkul/reservation-service/internal/service"
	"github.com/eursukkul/reservation-service/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	repo := repository.NewReservationRepository()

	if cfg.SeedDemoData {
		if err := seed.Load(repo); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	// RabbitMQ publisher: lifecycle events for downstream collaborators.
	// Optional, the service runs standalone without a broker.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	svc := service.NewReservationService(repo, publisher)

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "reservation-service"})
	})

	handler.NewReservationHandler(svc).RegisterRoutes(e)

	log.Printf("Reservation Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
