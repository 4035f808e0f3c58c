package access

import (
	"nutripulse-service/internal/app/models"
	"nutripulse-service/internal/pkg/constvars"
	"nutripulse-service/internal/pkg/exceptions"
)

// Capability names the permission level an operation requires.
type Capability string

const (
	// CapabilityReadOwnOrAny allows nurses to read any patient and patients
	// to read only their own data.
	CapabilityReadOwnOrAny Capability = "read-own-or-any"
	// CapabilityWriteAsNurse restricts an operation to nurse actors.
	CapabilityWriteAsNurse Capability = "write-as-nurse"
)

// Authorize decides whether the authenticated actor may act on the target
// patient with the required capability. It is a pure decision over the
// session snapshot: nil on allow, a taxonomy error on deny. The missing-actor
// check runs before any role or ownership evaluation.
func Authorize(session *models.Session, targetPatientID string, capability Capability) error {
	if session == nil || session.UserID == "" {
		return exceptions.ErrTokenMissing(nil)
	}

	switch capability {
	case CapabilityWriteAsNurse:
		if session.Role != constvars.RoleTypeNurse {
			return exceptions.ErrNurseRoleRequired(nil)
		}
		return nil
	case CapabilityReadOwnOrAny:
		if session.Role == constvars.RoleTypeNurse {
			return nil
		}
		if session.Role == constvars.RoleTypePatient {
			if session.PatientID == "" || session.PatientID != targetPatientID {
				return exceptions.ErrPatientAccessDenied(nil)
			}
			return nil
		}
		return exceptions.ErrInvalidRoleType(nil)
	default:
		return exceptions.ErrInvalidRoleType(nil)
	}
}
