package models

// Patient is the role profile for users with role "patient", 1:1 by UserID.
type Patient struct {
	ID             string `bson:"_id,omitempty" json:"id"`
	UserID         string `bson:"userId" json:"user_id"`
	Age            int    `bson:"age" json:"age"`
	Gender         string `bson:"gender" json:"gender"`
	MedicalHistory string `bson:"medicalHistory" json:"medical_history"`
	NutritionNeeds string `bson:"nutritionNeeds" json:"nutrition_needs"`
}
