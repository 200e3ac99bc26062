package constants

import "fmt"

// Role yang dikenal token schoolku
const (
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStaff   = "staff"
	RoleUser    = "user"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "❌ Hanya teacher, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyOwnersCanAccess   = "❌ Hanya owner yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleStaff,
		RoleTeacher,
		RoleAdmin,
		RoleOwner,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleStaff,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}

	OwnerOnly = []string{
		RoleOwner,
	}
)
