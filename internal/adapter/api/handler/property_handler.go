package handler

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"rentify/internal/domain/entity"
	"rentify/internal/usecase"
	"rentify/pkg/errors"
	"rentify/pkg/logger"
	"rentify/pkg/response"
	"rentify/pkg/utils"
)

const maxPhotoSize = 5 * 1024 * 1024

type PropertyHandler struct {
	propertyUseCase *usecase.PropertyUseCase
}

func NewPropertyHandler(propertyUseCase *usecase.PropertyUseCase) *PropertyHandler {
	return &PropertyHandler{
		propertyUseCase: propertyUseCase,
	}
}

func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid multipart form", err))
	}

	owner := c.FormValue("owner")
	if owner == "" {
		return response.Error(c, errors.BadRequest("owner is required", nil))
	}
	if c.FormValue("title") == "" {
		return response.Error(c, errors.BadRequest("title is required", nil))
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("price must be a number", err))
	}

	bathrooms, err := formInt(c, "no_of_bath")
	if err != nil {
		return response.Error(c, err)
	}
	bedrooms, err := formInt(c, "no_of_bed")
	if err != nil {
		return response.Error(c, err)
	}

	photos, err := readPhotos(form.File["photos"])
	if err != nil {
		return response.Error(c, err)
	}

	property, err := h.propertyUseCase.CreateProperty(
		c.Request().Context(),
		usecase.CreatePropertyInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Address:     c.FormValue("address"),
			Price:       price,
			Contact:     c.FormValue("contact"),
			Email:       c.FormValue("email"),
			Type:        c.FormValue("type"),
			Bathrooms:   bathrooms,
			Bedrooms:    bedrooms,
			SquareFeet:  c.FormValue("square_feet"),
			Amenities:   formList(form, "amenities"),
			Metro:       c.FormValue("metro"),
			BusStand:    c.FormValue("bus_stand"),
			Hospital:    c.FormValue("hospital"),
			School:      c.FormValue("school"),
			Market:      c.FormValue("market"),
			Others:      c.FormValue("others"),
			Owner:       owner,
		},
		photos,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, property)
}

func (h *PropertyHandler) ListProperties(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	properties, total, err := h.propertyUseCase.ListProperties(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	// Without an explicit limit the frontend expects every property.
	if params.PageSize == 0 {
		return response.Success(c, properties)
	}

	return response.Paginated(c, properties, total, params.Page, params.PageSize)
}

type userIDRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func (h *PropertyHandler) UserProperties(c echo.Context) error {
	return h.resolveList(c, h.propertyUseCase.UserProperties)
}

func (h *PropertyHandler) LikedProperties(c echo.Context) error {
	return h.resolveList(c, h.propertyUseCase.LikedProperties)
}

func (h *PropertyHandler) EnquiredProperties(c echo.Context) error {
	return h.resolveList(c, h.propertyUseCase.EnquiredProperties)
}

func (h *PropertyHandler) resolveList(c echo.Context, resolve func(context.Context, string) ([]*entity.Property, error)) error {
	var req userIDRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	properties, err := resolve(c.Request().Context(), req.UserID)
	if err != nil {
		return response.Error(c, err)
	}
	if properties == nil {
		properties = []*entity.Property{}
	}

	return response.Success(c, properties)
}

func (h *PropertyHandler) LikeProperty(c echo.Context) error {
	propertyID := c.Param("id")

	var req userIDRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.propertyUseCase.LikeProperty(c.Request().Context(), propertyID, req.UserID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Property liked successfully",
	})
}

func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	userID := c.Param("userId")
	propertyID := c.Param("propertyId")

	if err := h.propertyUseCase.DeleteProperty(c.Request().Context(), userID, propertyID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Property deleted successfully",
	})
}

func readPhotos(files []*multipart.FileHeader) ([]usecase.PhotoInput, error) {
	photos := make([]usecase.PhotoInput, 0, len(files))
	for _, file := range files {
		if file.Size > maxPhotoSize {
			return nil, errors.BadRequest(fmt.Sprintf("Photo %s exceeds maximum size (%dMB)", file.Filename, maxPhotoSize/(1024*1024)), nil)
		}

		contentType := file.Header.Get("Content-Type")
		if !isAllowedPhotoType(contentType) {
			return nil, errors.BadRequest(fmt.Sprintf("Photo %s has unsupported type %s", file.Filename, contentType), nil)
		}

		src, err := file.Open()
		if err != nil {
			return nil, errors.Internal("Unable to read photo", err)
		}

		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, errors.Internal("Unable to read photo", err)
		}

		logger.Debug("Read photo %s (%d bytes, %s)", file.Filename, len(data), contentType)

		photos = append(photos, usecase.PhotoInput{
			Data:        data,
			ContentType: contentType,
			Filename:    file.Filename,
		})
	}

	return photos, nil
}

func isAllowedPhotoType(fileType string) bool {
	switch fileType {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	}
	return false
}

func formInt(c echo.Context, field string) (int, error) {
	value := c.FormValue(field)
	if value == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.BadRequest(fmt.Sprintf("%s must be a number", field), err)
	}

	return n, nil
}

// formList accepts either repeated form fields or one comma-separated
// value, which is how the frontend sends amenities.
func formList(form *multipart.Form, field string) []string {
	values := form.Value[field]
	if len(values) == 1 && strings.Contains(values[0], ",") {
		values = strings.Split(values[0], ",")
	}

	list := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			list = append(list, trimmed)
		}
	}

	return list
}
