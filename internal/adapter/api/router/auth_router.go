package router

import (
	"github.com/labstack/echo/v4"

	"rentify/internal/adapter/api/handler"
)

func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler) {
	e.POST("/data", authHandler.Register)
	e.POST("/login", authHandler.Login)
}
