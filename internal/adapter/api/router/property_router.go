package router

import (
	"github.com/labstack/echo/v4"

	"rentify/internal/adapter/api/handler"
)

func SetupPropertyRouter(e *echo.Echo, propertyHandler *handler.PropertyHandler) {
	e.POST("/properties", propertyHandler.CreateProperty)
	e.GET("/properties", propertyHandler.ListProperties)
	e.POST("/properties/:id/like", propertyHandler.LikeProperty)

	e.POST("/user-properties", propertyHandler.UserProperties)
	e.POST("/liked-properties", propertyHandler.LikedProperties)
	e.POST("/enquired-properties", propertyHandler.EnquiredProperties)

	e.DELETE("/user-properties/:userId/:propertyId", propertyHandler.DeleteProperty)
}
