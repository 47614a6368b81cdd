package model

// Staff is a hotel employee.  Staff members can be referenced by a
// reservation as the handling employee but carry no behavior of their own.
// This struct corresponds to a row in the `staff` table.
//
// Fields:
//  ID         primary key identifier, assigned by the store on first save.
//  Name       full name of the employee (required, non-empty).
//  Role       job title, if recorded.
//  Department department or area the employee works in, if recorded.
type Staff struct {
	ID         uint64  `json:"id"`                   // staff.id
	Name       string  `json:"name"`                 // staff.name
	Role       *string `json:"role,omitempty"`       // staff.role (nullable)
	Department *string `json:"department,omitempty"` // staff.department (nullable)
}
