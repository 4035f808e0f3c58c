package requests

type CreateHealthRecord struct {
	CheckupNotes  string `json:"checkup_notes" validate:"required,min=1"`
	Prescriptions string `json:"prescriptions,omitempty"`
}

type CreateNutritionPlan struct {
	DietPlan string `json:"diet_plan" validate:"required,min=1"`
}

// UpdatePatient carries the mutable subset of a patient profile. Pointer
// fields distinguish "not sent" from zero values on the partial update.
type UpdatePatient struct {
	Age            *int    `json:"age,omitempty" validate:"omitempty,gt=0,lt=150"`
	Gender         *string `json:"gender,omitempty" validate:"omitempty,gender"`
	MedicalHistory *string `json:"medical_history,omitempty"`
	NutritionNeeds *string `json:"nutrition_needs,omitempty"`
}
