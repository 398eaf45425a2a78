package usecase

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"rentify/internal/domain/entity"
	"rentify/internal/domain/repository"
	"rentify/internal/domain/service"
	"rentify/pkg/errors"
	"rentify/pkg/logger"
)

const maxPhotosPerProperty = 5

type PropertyUseCase struct {
	propertyRepo repository.PropertyRepository
	userRepo     repository.UserRepository
	photoStorage service.PhotoStorage
}

func NewPropertyUseCase(
	propertyRepo repository.PropertyRepository,
	userRepo repository.UserRepository,
	photoStorage service.PhotoStorage,
) *PropertyUseCase {
	return &PropertyUseCase{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		photoStorage: photoStorage,
	}
}

type CreatePropertyInput struct {
	Title       string
	Description string
	Address     string
	Price       float64
	Contact     string
	Email       string
	Type        string
	Bathrooms   int
	Bedrooms    int
	SquareFeet  string
	Amenities   []string
	Metro       string
	BusStand    string
	Hospital    string
	School      string
	Market      string
	Others      string
	Owner       string
}

type PhotoInput struct {
	Data        []byte
	ContentType string
	Filename    string
}

// CreateProperty uploads all photos concurrently, then persists the
// property and links it into the owner's property list. On any failure
// after blobs were written, the written blobs (and the property
// document, if it exists by then) are deleted so no partial state
// survives the request.
func (uc *PropertyUseCase) CreateProperty(ctx context.Context, input CreatePropertyInput, photos []PhotoInput) (*entity.Property, error) {
	if len(photos) > maxPhotosPerProperty {
		return nil, errors.BadRequest(fmt.Sprintf("At most %d photos are allowed", maxPhotosPerProperty), nil)
	}

	// The owner is checked before any blob is written; a bad owner id
	// must not leave orphaned uploads behind.
	if _, err := uc.userRepo.GetByID(ctx, input.Owner); err != nil {
		return nil, err
	}

	uploads := make([]*service.UploadResult, len(photos))
	g, gctx := errgroup.WithContext(ctx)
	for i, photo := range photos {
		i, photo := i, photo
		g.Go(func() error {
			result, err := uc.photoStorage.UploadPhoto(gctx, bytes.NewReader(photo.Data), photo.ContentType, photo.Filename)
			if err != nil {
				return fmt.Errorf("photo %q: %w", photo.Filename, err)
			}
			uploads[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.deleteUploads(ctx, uploads)
		return nil, errors.Internal("Failed to upload photos", err)
	}

	photoURLs := make([]string, len(uploads))
	for i, upload := range uploads {
		photoURLs[i] = upload.URL
	}

	property := &entity.Property{
		Title:       input.Title,
		Description: input.Description,
		Address:     input.Address,
		Price:       input.Price,
		Contact:     input.Contact,
		Email:       input.Email,
		Type:        input.Type,
		Bathrooms:   input.Bathrooms,
		Bedrooms:    input.Bedrooms,
		SquareFeet:  input.SquareFeet,
		Amenities:   input.Amenities,
		Metro:       input.Metro,
		BusStand:    input.BusStand,
		Hospital:    input.Hospital,
		School:      input.School,
		Market:      input.Market,
		Others:      input.Others,
		Photos:      photoURLs,
		Owner:       input.Owner,
		Likes:       []string{},
		Liked:       0,
	}

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		uc.deleteUploads(ctx, uploads)
		return nil, err
	}

	if err := uc.userRepo.AddProperty(ctx, input.Owner, property.ID); err != nil {
		if derr := uc.propertyRepo.Delete(ctx, property.ID, input.Owner); derr != nil {
			logger.Error("Failed to roll back property %s: %v", property.ID, derr)
		}
		uc.deleteUploads(ctx, uploads)
		return nil, err
	}

	return property, nil
}

// deleteUploads is the compensation path; best effort, a blob that
// cannot be deleted is only logged.
func (uc *PropertyUseCase) deleteUploads(ctx context.Context, uploads []*service.UploadResult) {
	for _, upload := range uploads {
		if upload == nil {
			continue
		}
		if err := uc.photoStorage.DeletePhoto(ctx, upload.ObjectName); err != nil {
			logger.Error("Failed to delete orphaned photo %s: %v", upload.ObjectName, err)
		}
	}
}

func (uc *PropertyUseCase) ListProperties(ctx context.Context, limit, offset int) ([]*entity.Property, int64, error) {
	properties, total, err := uc.propertyRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if properties == nil {
		properties = []*entity.Property{}
	}
	return properties, total, nil
}

func (uc *PropertyUseCase) UserProperties(ctx context.Context, userID string) ([]*entity.Property, error) {
	return uc.resolveUserList(ctx, userID, func(user *entity.User) []string { return user.Properties })
}

func (uc *PropertyUseCase) LikedProperties(ctx context.Context, userID string) ([]*entity.Property, error) {
	return uc.resolveUserList(ctx, userID, func(user *entity.User) []string { return user.Likes })
}

func (uc *PropertyUseCase) EnquiredProperties(ctx context.Context, userID string) ([]*entity.Property, error) {
	return uc.resolveUserList(ctx, userID, func(user *entity.User) []string { return user.Enquiries })
}

func (uc *PropertyUseCase) resolveUserList(ctx context.Context, userID string, pick func(*entity.User) []string) ([]*entity.Property, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return uc.propertyRepo.GetByIDs(ctx, pick(user))
}

func (uc *PropertyUseCase) LikeProperty(ctx context.Context, propertyID, userID string) error {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	property, err := uc.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}

	// The property's liker set is the source of truth for duplicates.
	// The original API reports this as a 400, so no 409 here.
	if property.LikedBy(userID) {
		return errors.BadRequest("Property already liked", nil)
	}

	if err := uc.propertyRepo.AddLiker(ctx, propertyID, userID); err != nil {
		return err
	}

	return uc.userRepo.AddLike(ctx, userID, propertyID)
}

func (uc *PropertyUseCase) DeleteProperty(ctx context.Context, userID, propertyID string) error {
	return uc.propertyRepo.Delete(ctx, propertyID, userID)
}
