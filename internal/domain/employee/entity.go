package employee

import "time"

// Role is the dashboard role carried in the access token. Attendance
// mutations are always self-service; report and override routes are gated
// on the role.
type Role string

const (
	RoleSuperadmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleSupervisor Role = "supervisor"
	RoleEmployee   Role = "employee"
)

// CanViewReports reports whether the role may read aggregated reports.
func (r Role) CanViewReports() bool {
	switch r {
	case RoleSuperadmin, RoleAdmin, RoleManager, RoleSupervisor:
		return true
	}
	return false
}

// CanOverrideAttendance reports whether the role may append corrective
// attendance events for another employee.
func (r Role) CanOverrideAttendance() bool {
	switch r {
	case RoleSuperadmin, RoleAdmin, RoleManager:
		return true
	}
	return false
}

type Employee struct {
	ID         string
	FullName   string
	Department string
	Position   *string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
