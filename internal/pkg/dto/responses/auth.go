package responses

type UserSnapshot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type RegisterUser struct {
	AccessToken string       `json:"access_token"`
	User        UserSnapshot `json:"user"`
}

type LoginUser struct {
	AccessToken string       `json:"access_token"`
	User        UserSnapshot `json:"user"`
}

// UserProfile is the /auth/profile payload: the user snapshot plus the
// role-specific profile block.
type UserProfile struct {
	UserSnapshot
	PatientData *PatientSnapshot `json:"patient_data,omitempty"`
	NurseData   *NurseSnapshot   `json:"nurse_data,omitempty"`
}
