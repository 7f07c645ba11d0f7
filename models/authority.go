// path: models/authority.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Authority is a tracked government body with an operator-maintained score.
type Authority struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	HonourScore int                `bson:"honourScore" json:"honourScore"`
}
