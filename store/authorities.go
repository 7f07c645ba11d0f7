// path: store/authorities.go
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Kausheya2006/RaiseUrVoice/models"
)

// AuthorityStore persists authorities. Email uniqueness comes from the
// unique index created by database.EnsureIndexes.
type AuthorityStore struct {
	col *mongo.Collection
}

func NewAuthorityStore(col *mongo.Collection) *AuthorityStore {
	return &AuthorityStore{col: col}
}

func (s *AuthorityStore) Create(ctx context.Context, name, email string, honourScore int) (models.Authority, error) {
	a := models.Authority{
		Name:        strings.TrimSpace(name),
		Email:       strings.TrimSpace(email),
		HonourScore: honourScore,
	}
	if a.Name == "" {
		return a, missing("name")
	}
	if a.Email == "" {
		return a, missing("email")
	}
	a.ID = primitive.NewObjectID()

	if _, err := s.col.InsertOne(ctx, a); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Authority{}, fmt.Errorf("authority with email %s: %w", a.Email, ErrConflict)
		}
		return models.Authority{}, unavailable("insert authority", err)
	}
	return a, nil
}

// ListAll returns every authority in creation (_id ascending) order.
func (s *AuthorityStore) ListAll(ctx context.Context) ([]models.Authority, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, unavailable("find authorities", err)
	}
	defer cur.Close(ctx)

	out := []models.Authority{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, unavailable("decode authorities", err)
	}
	return out, nil
}

// UpdateHonourScore sets the score of the oldest authority named exactly name
// and returns it as stored after the update. Names are not unique; prefer
// UpdateHonourScoreByEmail when the caller knows the email.
func (s *AuthorityStore) UpdateHonourScore(ctx context.Context, name string, score int) (models.Authority, error) {
	return s.updateScore(ctx, "name", name, score)
}

func (s *AuthorityStore) UpdateHonourScoreByEmail(ctx context.Context, email string, score int) (models.Authority, error) {
	return s.updateScore(ctx, "email", email, score)
}

func (s *AuthorityStore) updateScore(ctx context.Context, key, value string, score int) (models.Authority, error) {
	var a models.Authority
	value = strings.TrimSpace(value)
	if value == "" {
		return a, missing(key)
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	err := s.col.FindOneAndUpdate(ctx,
		bson.D{{Key: key, Value: value}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "honourScore", Value: score}}}},
		opts,
	).Decode(&a)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return a, fmt.Errorf("authority with %s %q: %w", key, value, ErrNotFound)
	}
	if err != nil {
		return a, unavailable("update honour score", err)
	}
	return a, nil
}
