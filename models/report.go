// path: models/report.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxImagesPerReport caps the attachments accepted with one submission.
const MaxImagesPerReport = 5

// Image is an uploaded attachment stored inline with its report.
// Data holds the base64 text of the original bytes.
type Image struct {
	Filename    string `bson:"filename" json:"filename"`
	ContentType string `bson:"contentType" json:"contentType"`
	Data        string `bson:"data" json:"data"`
}

// IssueReport is a citizen-submitted civic issue. The creation time is the
// timestamp embedded in ID; no separate field is persisted.
type IssueReport struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Mobile string             `bson:"mobile" json:"mobile"`
	Aadhar string             `bson:"aadhar" json:"aadhar"`
	Issue  string             `bson:"issue" json:"issue"`
	Area   string             `bson:"area" json:"area"`
	Images []Image            `bson:"images" json:"images"`
}

// CreatedAt returns the creation time carried by the report id.
func (r IssueReport) CreatedAt() time.Time {
	return r.ID.Timestamp()
}
