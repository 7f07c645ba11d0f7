// path: store/reports.go
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

// ReportStore persists issue reports. Images live inside the report document,
// so a single insert is all-or-nothing.
type ReportStore struct {
	col *mongo.Collection
}

func NewReportStore(col *mongo.Collection) *ReportStore {
	return &ReportStore{col: col}
}

// ValidateReport trims the scalar fields in place and checks that each is
// present and that the image count is within bounds.
func ValidateReport(r *models.IssueReport) error {
	fields := []struct {
		name string
		val  *string
	}{
		{"name", &r.Name},
		{"mobile", &r.Mobile},
		{"aadhar", &r.Aadhar},
		{"issue", &r.Issue},
		{"area", &r.Area},
	}
	for _, f := range fields {
		*f.val = strings.TrimSpace(*f.val)
		if *f.val == "" {
			return missing(f.name)
		}
	}
	if len(r.Images) > models.MaxImagesPerReport {
		return fmt.Errorf("%w: at most %d images per report, got %d",
			ErrValidation, models.MaxImagesPerReport, len(r.Images))
	}
	return nil
}

// Create validates r and inserts it, returning the new id in hex.
func (s *ReportStore) Create(ctx context.Context, r models.IssueReport) (string, error) {
	if err := ValidateReport(&r); err != nil {
		return "", err
	}
	if r.Images == nil {
		r.Images = []models.Image{}
	}
	r.ID = primitive.NewObjectID()

	if _, err := s.col.InsertOne(ctx, r); err != nil {
		return "", unavailable("insert report", err)
	}
	return r.ID.Hex(), nil
}

// ListAll returns every report in creation (_id ascending) order.
func (s *ReportStore) ListAll(ctx context.Context) ([]models.IssueReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, unavailable("find reports", err)
	}
	defer cur.Close(ctx)

	out := []models.IssueReport{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, unavailable("decode reports", err)
	}
	return out, nil
}

// Get loads one report by hex id. A malformed id is reported as not found.
func (s *ReportStore) Get(ctx context.Context, id string) (models.IssueReport, error) {
	var r models.IssueReport
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return r, fmt.Errorf("report %q: %w", id, ErrNotFound)
	}

	err = s.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return r, fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return r, unavailable("find report", err)
	}
	return r, nil
}
