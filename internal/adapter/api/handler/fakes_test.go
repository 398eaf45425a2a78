package handler

import (
	"context"
	"fmt"
	"io"
	"sync"

	"rentify/internal/domain/entity"
	"rentify/internal/domain/service"
	"rentify/pkg/errors"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) AddProperty(ctx context.Context, userID, propertyID string) error {
	return r.union(userID, propertyID, func(user *entity.User) *[]string { return &user.Properties })
}

func (r *fakeUserRepo) AddLike(ctx context.Context, userID, propertyID string) error {
	return r.union(userID, propertyID, func(user *entity.User) *[]string { return &user.Likes })
}

func (r *fakeUserRepo) AddEnquiry(ctx context.Context, userID, propertyID string) error {
	return r.union(userID, propertyID, func(user *entity.User) *[]string { return &user.Enquiries })
}

func (r *fakeUserRepo) union(userID, value string, pick func(*entity.User) *[]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return errors.NotFound("User", nil)
	}
	list := pick(user)
	for _, existing := range *list {
		if existing == value {
			return nil
		}
	}
	*list = append(*list, value)
	return nil
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakePropertyRepo struct {
	mu         sync.Mutex
	properties map[string]*entity.Property
	order      []string
	seq        int
}

func newFakePropertyRepo(properties ...*entity.Property) *fakePropertyRepo {
	repo := &fakePropertyRepo{properties: make(map[string]*entity.Property)}
	for _, property := range properties {
		repo.properties[property.ID] = property
		repo.order = append(repo.order, property.ID)
	}
	return repo
}

func (r *fakePropertyRepo) Create(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	property.ID = fmt.Sprintf("prop-%d", r.seq)
	r.properties[property.ID] = property
	r.order = append(r.order, property.ID)
	return nil
}

func (r *fakePropertyRepo) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.properties[id]
	if !ok {
		return nil, errors.NotFound("Property", nil)
	}
	return property, nil
}

func (r *fakePropertyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Property, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var properties []*entity.Property
	for _, id := range r.order {
		properties = append(properties, r.properties[id])
	}
	total := int64(len(properties))
	if offset > len(properties) {
		offset = len(properties)
	}
	properties = properties[offset:]
	if limit > 0 && limit < len(properties) {
		properties = properties[:limit]
	}
	return properties, total, nil
}

func (r *fakePropertyRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	properties := make([]*entity.Property, 0, len(ids))
	for _, id := range ids {
		if property, ok := r.properties[id]; ok {
			properties = append(properties, property)
		}
	}
	return properties, nil
}

func (r *fakePropertyRepo) AddLiker(ctx context.Context, propertyID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	property, ok := r.properties[propertyID]
	if !ok {
		return errors.NotFound("Property", nil)
	}
	for _, id := range property.Likes {
		if id == userID {
			return nil
		}
	}
	property.Likes = append(property.Likes, userID)
	property.Liked = len(property.Likes)
	return nil
}

func (r *fakePropertyRepo) Delete(ctx context.Context, propertyID, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.properties, propertyID)
	for i, id := range r.order {
		if id == propertyID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakePhotoStorage struct {
	mu     sync.Mutex
	stored map[string]bool
}

func newFakePhotoStorage() *fakePhotoStorage {
	return &fakePhotoStorage{stored: make(map[string]bool)}
}

func (s *fakePhotoStorage) UploadPhoto(ctx context.Context, file io.Reader, contentType, filename string) (*service.UploadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	objectName := "blob-" + filename
	s.stored[objectName] = true
	return &service.UploadResult{
		URL:        "https://cdn.test/" + filename,
		ObjectName: objectName,
		Token:      "token-" + filename,
	}, nil
}

func (s *fakePhotoStorage) DeletePhoto(ctx context.Context, objectName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stored, objectName)
	return nil
}
