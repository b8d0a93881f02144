package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Expense is a single spending record embedded in its owner's User document.
type Expense struct {
	ID          string    `bson:"id" json:"id"`
	Description string    `bson:"description" json:"description"`
	Amount      float64   `bson:"amount" json:"amount"`
	Date        time.Time `bson:"date" json:"date"`
}

// User is an account document. Expenses live inline on the user rather than
// in their own collection, so every mutation targets a single document.
type User struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string        `bson:"name" json:"name"`
	Email    string        `bson:"email" json:"email"`
	Password string        `bson:"password" json:"-"`
	Expenses []Expense     `bson:"expenses" json:"expenses"`
}

// SessionUser is the identity snapshot captured at login time.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
