package handler

import (
	"github.com/labstack/echo/v4"

	"rentify/internal/usecase"
	"rentify/pkg/response"
)

type EnquiryHandler struct {
	enquiryUseCase *usecase.EnquiryUseCase
}

func NewEnquiryHandler(enquiryUseCase *usecase.EnquiryUseCase) *EnquiryHandler {
	return &EnquiryHandler{
		enquiryUseCase: enquiryUseCase,
	}
}

type enquiryRequest struct {
	OwnerEmail  string `json:"ownerEmail" validate:"required,email"`
	SenderEmail string `json:"senderEmail" validate:"required,email"`
	ID          string `json:"id" validate:"required"`
	PropertyID  string `json:"propertyId" validate:"required"`
}

func (h *EnquiryHandler) SubmitEnquiry(c echo.Context) error {
	var req enquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	err := h.enquiryUseCase.Submit(c.Request().Context(), usecase.EnquiryInput{
		OwnerEmail:  req.OwnerEmail,
		SenderEmail: req.SenderEmail,
		SenderID:    req.ID,
		PropertyID:  req.PropertyID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Enquiry sent successfully",
	})
}
