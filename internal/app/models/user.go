package models

import "time"

// User is the authentication identity. Role decides which profile document
// (Patient or Nurse) exists for it; the role never changes after creation.
type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
