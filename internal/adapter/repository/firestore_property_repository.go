package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rentify/internal/domain/entity"
	"rentify/internal/domain/repository"
	"rentify/pkg/errors"
	"rentify/pkg/logger"
)

type firestorePropertyRepository struct {
	client *firestore.Client
}

func NewFirestorePropertyRepository(client *firestore.Client) repository.PropertyRepository {
	return &firestorePropertyRepository{
		client: client,
	}
}

func (r *firestorePropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	if property.ID == "" {
		doc := r.client.Collection("properties").NewDoc()
		property.ID = doc.ID
	}

	now := time.Now()
	if property.CreatedAt.IsZero() {
		property.CreatedAt = now
	}
	property.UpdatedAt = now

	_, err := r.client.Collection("properties").Doc(property.ID).Set(ctx, property)
	if err != nil {
		return errors.Internal("Failed to create property", err)
	}

	return nil
}

func (r *firestorePropertyRepository) GetByID(ctx context.Context, id string) (*entity.Property, error) {
	doc, err := r.client.Collection("properties").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Property", err)
		}
		return nil, errors.Internal("Failed to get property", err)
	}

	var property entity.Property
	if err := doc.DataTo(&property); err != nil {
		return nil, errors.Internal("Failed to parse property data", err)
	}
	property.ID = doc.Ref.ID

	return &property, nil
}

func (r *firestorePropertyRepository) List(ctx context.Context, limit, offset int) ([]*entity.Property, int64, error) {
	query := r.client.Collection("properties").Query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count properties", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var properties []*entity.Property

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list properties", err)
		}

		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			return nil, 0, errors.Internal("Failed to parse property data", err)
		}
		property.ID = doc.Ref.ID
		properties = append(properties, &property)
	}

	return properties, total, nil
}

// Firestore caps batched document lookups at 30 refs per call.
const getAllBatchSize = 30

func (r *firestorePropertyRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Property, error) {
	if len(ids) == 0 {
		return []*entity.Property{}, nil
	}

	propertyMap := make(map[string]*entity.Property)
	for i := 0; i < len(ids); i += getAllBatchSize {
		end := i + getAllBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		batchIDs := ids[i:end]
		docRefs := make([]*firestore.DocumentRef, len(batchIDs))
		for j, id := range batchIDs {
			docRefs[j] = r.client.Collection("properties").Doc(id)
		}

		docs, err := r.client.GetAll(ctx, docRefs)
		if err != nil {
			return nil, errors.Internal("Failed to fetch properties", err)
		}

		for _, doc := range docs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var property entity.Property
			if err := doc.DataTo(&property); err != nil {
				logger.Warn("Skipping unparseable property %s: %v", doc.Ref.ID, err)
				continue
			}
			property.ID = doc.Ref.ID
			propertyMap[doc.Ref.ID] = &property
		}
	}

	// Preserve the order of the caller's id list, dropping broken refs.
	properties := make([]*entity.Property, 0, len(ids))
	for _, id := range ids {
		if property, ok := propertyMap[id]; ok {
			properties = append(properties, property)
		}
	}

	return properties, nil
}

// AddLiker runs in a transaction and recomputes the counter from the
// liker set, so concurrent likes by the same user collapse into one and
// liked can never drift from len(likes).
func (r *firestorePropertyRepository) AddLiker(ctx context.Context, propertyID, userID string) error {
	ref := r.client.Collection("properties").Doc(propertyID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			return err
		}

		var property entity.Property
		if err := doc.DataTo(&property); err != nil {
			return err
		}

		likes := property.Likes
		if !property.LikedBy(userID) {
			likes = append(likes, userID)
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "likes", Value: likes},
			{Path: "liked", Value: len(likes)},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Property", err)
		}
		return errors.Internal("Failed to like property", err)
	}

	return nil
}

func (r *firestorePropertyRepository) Delete(ctx context.Context, propertyID, ownerID string) error {
	propertyRef := r.client.Collection("properties").Doc(propertyID)
	ownerRef := r.client.Collection("users").Doc(ownerID)

	bw := r.client.BulkWriter(ctx)

	deleteJob, err := bw.Delete(propertyRef)
	if err != nil {
		return errors.Internal("Failed to enqueue property delete", err)
	}

	updateJob, err := bw.Update(ownerRef, []firestore.Update{
		{Path: "properties", Value: firestore.ArrayRemove(propertyID)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to enqueue owner update", err)
	}

	bw.End()

	if _, err := deleteJob.Results(); err != nil {
		return errors.Internal("Failed to delete property", err)
	}
	if _, err := updateJob.Results(); err != nil {
		// An already-removed owner document makes the delete a no-op,
		// not a failure.
		if status.Code(err) != codes.NotFound {
			return errors.Internal("Failed to update owner properties", err)
		}
		logger.Warn("Owner %s missing while deleting property %s", ownerID, propertyID)
	}

	return nil
}
