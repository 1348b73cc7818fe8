package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a purchased product tied to a user. Written by ledger
// collaborators; this service only persists the shape.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Name          string             `bson:"name" json:"name"`
	Price         float64            `bson:"price" json:"price"`
	DatePurchased time.Time          `bson:"datePurchased" json:"datePurchased"`
	Status        string             `bson:"status" json:"status"`
}
