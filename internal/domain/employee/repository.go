package employee

import "context"

// EmployeeRepository is the read model over the employee directory. The
// directory itself (user management, invitations, etc.) is owned by another
// service; reporting only needs identity, name and department.
type EmployeeRepository interface {
	// GetByID returns the employee or ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive returns every active employee, for roll-ups and trends.
	ListActive(ctx context.Context) ([]Employee, error)
}
