package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
)

const (
	RoleTypeNurse   = "nurse"
	RoleTypePatient = "patient"
)

const (
	URLParamPatientID = "patientID"
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)
