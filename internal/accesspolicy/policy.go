// Package accesspolicy resolves whether a caller role may perform a verb on a
// resource. The table is explicit and the resolver is a pure function, so the
// policy is testable without any HTTP or storage machinery.
package accesspolicy

// Resource identifies a protected API resource.
type Resource string

const (
	ResourceMenu    Resource = "menu"
	ResourceBooking Resource = "booking"
)

// Verb identifies an operation on a resource.
type Verb string

const (
	VerbList   Verb = "list"
	VerbRead   Verb = "read"
	VerbCreate Verb = "create"
	VerbUpdate Verb = "update"
	VerbDelete Verb = "delete"
)

// Role is the caller's access level. Roles are ordered: a higher role holds
// every permission of the roles below it.
type Role int

const (
	RoleAnonymous Role = iota
	RoleAuthenticated
	RoleAdmin
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleAuthenticated:
		return "authenticated"
	case RoleAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// minRole holds the weakest role allowed to perform each (resource, verb).
// Verbs absent from a resource's row are denied for everyone.
var minRole = map[Resource]map[Verb]Role{
	ResourceMenu: {
		VerbList:   RoleAuthenticated,
		VerbRead:   RoleAuthenticated,
		VerbCreate: RoleAdmin,
		VerbUpdate: RoleAdmin,
		VerbDelete: RoleAdmin,
	},
	ResourceBooking: {
		VerbList:   RoleAuthenticated,
		VerbRead:   RoleAuthenticated,
		VerbCreate: RoleAuthenticated,
		VerbUpdate: RoleAdmin,
		VerbDelete: RoleAdmin,
	},
}

// Allow reports whether role may perform verb on resource.
func Allow(resource Resource, verb Verb, role Role) bool {
	verbs, ok := minRole[resource]
	if !ok {
		return false
	}
	required, ok := verbs[verb]
	if !ok {
		return false
	}
	return role >= required
}

// FilterOwnBookings reports whether a booking listing for the given role must
// be restricted to the caller's own records. Admins see every booking.
func FilterOwnBookings(role Role) bool {
	return role < RoleAdmin
}
