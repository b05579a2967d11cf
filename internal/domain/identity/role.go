package identity

// Role determines which part of the system a user may operate.
// Roles are a fixed set, not user-defined records.
type Role string

const (
	RoleCustomer     Role = "customer"
	RoleStoreManager Role = "store_manager"
	RoleMainManager  Role = "main_manager"
)

// ValidRoles lists every role accepted at registration or staff creation.
var ValidRoles = []Role{RoleCustomer, RoleStoreManager, RoleMainManager}

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}

// IsStaff reports whether the role belongs to company staff rather than a customer.
func (r Role) IsStaff() bool {
	return r == RoleStoreManager || r == RoleMainManager
}

// CanManageStore reports whether the role may run store-level operations
// such as truck scheduling and local inventory adjustments.
func (r Role) CanManageStore() bool {
	return r == RoleStoreManager || r == RoleMainManager
}

// CanManageCompany reports whether the role may run company-wide operations
// such as train scheduling, staff management, and reports.
func (r Role) CanManageCompany() bool {
	return r == RoleMainManager
}

func (r Role) String() string {
	return string(r)
}
