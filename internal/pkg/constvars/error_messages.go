package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"oneof":       "must be one of [%s]",
	"gt":          "must be greater than %s",
	"gte":         "must be greater than or equal to %s",
	"lt":          "must be less than %s",
	"lte":         "must be less than or equal to %s",
	"user_role":   "must be either 'nurse' or 'patient'",
	"gender":      "must be one of 'male', 'female' or 'other'",
	"required_if": "is required when %s is %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":         true,
	"max":         true,
	"oneof":       true,
	"gt":          true,
	"gte":         true,
	"lt":          true,
	"lte":         true,
	"required_if": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNurseAccessRequired           = "nurse access required"
	ErrClientPatientAccessDenied           = "access denied"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientNurseProfileNotFound          = "nurse profile not found"
	ErrClientUserNotFound                  = "user not found"
	ErrClientNurseFieldsRequired           = "specialization and hospital are required for nurses"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevURLParamIDInvalid        = "url path parameter '%s' is not a valid object id"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded while processing request"
	ErrDevFailedToHashPassword     = "failed to hash the given password"
	ErrDevInvalidCredentials       = "credentials do not match any user"
	ErrDevEmailAlreadyExists       = "user with the given email already exists"
	ErrDevInvalidRoleType          = "role type is not one of the known roles"
	ErrDevNurseRoleRequired        = "actor role is not nurse for a nurse-only operation"
	ErrDevPatientOwnershipMismatch = "patient actor tried to access another patient's data"
	ErrDevAuthTokenMissing         = "authorization token missing from request header"
	ErrDevAuthTokenInvalid         = "authorization token is invalid"
	ErrDevAuthTokenExpired         = "authorization token is invalid or already expired"
	ErrDevAuthGenerateToken        = "failed to generate authorization token"
	ErrDevAuthSigningMethod        = "unexpected signing method on authorization token"
	ErrDevUserNotExists            = "user with the given identifier does not exist"
	ErrDevPatientNotExists         = "patient with the given identifier does not exist"
	ErrDevNurseProfileNotExists    = "nurse profile for the given user does not exist"

	ErrDevDBFailedToFindDocument    = "database failed to find document"
	ErrDevDBFailedToInsertDocument  = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "database failed to update document"
	ErrDevDBFailedToDeleteDocument  = "database failed to delete documents"
	ErrDevDBFailedToIterateDocument = "database failed to iterate documents"
	ErrDevDBStringNotObjectID       = "the given string cannot be converted to a mongo object id"

	ErrDevRedisSetData      = "redis failed to set data"
	ErrDevRedisGetData      = "redis failed to get data"
	ErrDevRedisDeleteData   = "redis failed to delete data"
	ErrDevRedisGetNoData    = "redis has no data for key: %s"
	ErrDevRedisStoreSession = "redis failed to store session data"
)
