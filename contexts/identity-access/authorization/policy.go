// Package authorization is the pure role/action policy for the platform.
//
// Every API operation names the action it performs and passes the acting
// account's role explicitly; the policy is a fixed table with no state and
// no session lookup. Denial is translated by the transport layer into the
// identity service's forbidden error.
package authorization

// Role is the account role the identity service stores on every account.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Action identifies a gated API operation.
type Action string

const (
	ActionCourseRead          Action = "course.read"
	ActionCourseSearch        Action = "course.search"
	ActionCourseWrite         Action = "course.write"
	ActionEnrollmentCreate    Action = "enrollment.create"
	ActionEnrollmentListOwn   Action = "enrollment.list-own"
	ActionEnrollmentDeleteOwn Action = "enrollment.delete-own"
	ActionAccountRead         Action = "account.read"
	ActionAccountWrite        Action = "account.write"
	ActionAccountSelf         Action = "account.self"
)

var grants = map[Role]map[Action]struct{}{
	RoleStudent: actionSet(
		ActionCourseRead,
		ActionCourseSearch,
		ActionEnrollmentCreate,
		ActionEnrollmentListOwn,
		ActionEnrollmentDeleteOwn,
		ActionAccountSelf,
	),
	RoleAdmin: actionSet(
		ActionCourseRead,
		ActionCourseSearch,
		ActionCourseWrite,
		ActionAccountRead,
		ActionAccountWrite,
		ActionAccountSelf,
	),
}

// Allowed reports whether role may perform action. Unknown roles and unknown
// actions are denied.
func Allowed(role Role, action Action) bool {
	actions, ok := grants[role]
	if !ok {
		return false
	}
	_, ok = actions[action]
	return ok
}

func actionSet(actions ...Action) map[Action]struct{} {
	set := make(map[Action]struct{}, len(actions))
	for _, action := range actions {
		set[action] = struct{}{}
	}
	return set
}
