package main

import (
	"context"
	"net/http"
	"os"

	"github.com/likhitatulimilli23/HCI/internal/handler"
	"github.com/likhitatulimilli23/HCI/internal/repository/postgres"
	"github.com/likhitatulimilli23/HCI/internal/service"

	_ "github.com/likhitatulimilli23/HCI/docs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (customValidator *CustomValidator) Validate(i interface{}) error {
	if err := customValidator.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// @title Professor Rating API
// @version 1.0
// @description API for browsing professors, their courses and tags, and submitting ratings

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api
// @schemes https http

func main() {
	godotenv.Load()
	e := echo.New()

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.PATCH},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		panic("DATABASE_URL not set")
	}

	storage, err := postgres.NewConnection(connString)
	if err != nil {
		panic(err)
	}
	defer storage.Close()

	ctx := context.Background()
	if err := storage.EnsureSchema(ctx); err != nil {
		panic(err)
	}
	if err := storage.SeedDatabase(ctx); err != nil {
		panic(err)
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	svc := service.New(storage)
	handler.SetupProfessorRoutes(e, svc)
	handler.SetupRatingRoutes(e, svc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3002"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
