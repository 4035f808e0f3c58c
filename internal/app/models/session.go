package models

// Session is the authenticated actor snapshot stored in Redis and attached
// to the request context after the JWT is verified. PatientID/NurseID is set
// only for the matching role.
type Session struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	PatientID string `json:"patient_id,omitempty"`
	NurseID   string `json:"nurse_id,omitempty"`
}
