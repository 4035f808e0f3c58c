package models

// Nurse is the role profile for users with role "nurse", 1:1 by UserID.
type Nurse struct {
	ID             string `bson:"_id,omitempty" json:"id"`
	UserID         string `bson:"userId" json:"user_id"`
	Specialization string `bson:"specialization" json:"specialization"`
	Hospital       string `bson:"hospital" json:"hospital"`
}
