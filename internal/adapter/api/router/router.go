package router

import (
	"github.com/labstack/echo/v4"

	"rentify/internal/adapter/api/handler"
)

func Setup(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	propertyHandler *handler.PropertyHandler,
	enquiryHandler *handler.EnquiryHandler,
	healthHandler *handler.HealthHandler,
) {
	SetupAuthRouter(e, authHandler)
	SetupPropertyRouter(e, propertyHandler)
	SetupEnquiryRouter(e, enquiryHandler)
	SetupHealthRouter(e, healthHandler)
}
