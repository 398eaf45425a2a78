package router

import (
	"github.com/labstack/echo/v4"

	"rentify/internal/adapter/api/handler"
)

func SetupEnquiryRouter(e *echo.Echo, enquiryHandler *handler.EnquiryHandler) {
	e.POST("/enquiry", enquiryHandler.SubmitEnquiry)
}
