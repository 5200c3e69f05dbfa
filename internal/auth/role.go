package auth

import (
	"strings"

	"github.com/adminrec/personnel-management/internal"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleEmployee   Role = "EMPLOYEE"
	RoleSupervisor Role = "SUPERVISOR"
)

// Permission is a fine-grained capability tag. The catalog is closed; roles
// bundle permissions, accounts only ever store the role name.
type Permission string

const (
	PermManageEmployee     Permission = "ADREC01_MANAGE_EMPLOYEE"
	PermManageJob          Permission = "ADREC02_MANAGE_JOB"
	PermConsultSector      Permission = "ADREC03_CONSULT_SECTOR"
	PermAssignSupervisor   Permission = "ADREC04_ASSIGN_SUPERVISOR"
	PermRegisterAttendance Permission = "ADREC05_REGISTER_ATTENDANCE"
	PermCreateRequest      Permission = "ADREC06_CREATE_REQUEST"
	PermManageRequest      Permission = "ADREC07_MANAGE_REQUEST"
	PermCalculateSalaries  Permission = "ADREC08_CALCULATE_SALARIES"
	PermGenerateReport     Permission = "ADREC09_GENERATE_REPORT"
)

// rolePermissions is the whole role model: a constant table, never mutated at
// runtime. PermissionsOf hands out copies so callers cannot poke at it.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermManageEmployee,
		PermManageJob,
		PermAssignSupervisor,
		PermGenerateReport,
	},
	RoleEmployee: {
		PermConsultSector,
		PermRegisterAttendance,
		PermCreateRequest,
	},
	RoleSupervisor: {
		PermConsultSector,
		PermRegisterAttendance,
		PermManageRequest,
		PermCalculateSalaries,
	},
}

func (r Role) String() string {
	return string(r)
}

// Valid reports whether r is part of the closed enumeration.
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// PermissionsOf returns the fixed permission set owned by the role. An
// unknown role yields nil; hitting that path is a programming error since
// roles only enter the system through RoleFromString.
func PermissionsOf(role Role) []Permission {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether the role's set contains the permission.
func HasPermission(role Role, permission Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// AuthorityTags derives the wire-level authority labels consumed by the
// request-authorization layer: one role-level tag plus one tag per permission.
func AuthorityTags(role Role) []string {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	tags := make([]string, 0, len(perms)+1)
	tags = append(tags, "ROLE_"+string(role))
	for _, p := range perms {
		tags = append(tags, "ROLE_"+string(p))
	}
	return tags
}

// RoleFromString parses a role name case-insensitively, rejecting anything
// outside the enumeration.
func RoleFromString(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !role.Valid() {
		return "", internal.NewValidationError("unknown role: "+s, internal.ErrCodeInvalidRole)
	}
	return role, nil
}
