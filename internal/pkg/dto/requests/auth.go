package requests

type RegisterUser struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,user_role"`
	Age      int    `json:"age" validate:"required,gt=0,lt=150"`
	Gender   string `json:"gender" validate:"required,gender"`

	// Nurse-specific fields
	Specialization string `json:"specialization,omitempty" validate:"max=100"`
	Hospital       string `json:"hospital,omitempty" validate:"max=200"`

	// Patient-specific fields
	MedicalHistory string `json:"medical_history,omitempty"`
	NutritionNeeds string `json:"nutrition_needs,omitempty"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
