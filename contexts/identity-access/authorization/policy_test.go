package authorization

import "testing"

func TestPolicyTable(t *testing.T) {
	cases := []struct {
		role    Role
		action  Action
		allowed bool
	}{
		{RoleAdmin, ActionCourseWrite, true},
		{RoleAdmin, ActionCourseRead, true},
		{RoleAdmin, ActionCourseSearch, true},
		{RoleAdmin, ActionAccountRead, true},
		{RoleAdmin, ActionAccountWrite, true},
		{RoleAdmin, ActionEnrollmentCreate, false},
		{RoleAdmin, ActionEnrollmentListOwn, false},
		{RoleStudent, ActionCourseRead, true},
		{RoleStudent, ActionCourseSearch, true},
		{RoleStudent, ActionCourseWrite, false},
		{RoleStudent, ActionEnrollmentCreate, true},
		{RoleStudent, ActionEnrollmentListOwn, true},
		{RoleStudent, ActionEnrollmentDeleteOwn, true},
		{RoleStudent, ActionAccountWrite, false},
	}

	for _, tc := range cases {
		if got := Allowed(tc.role, tc.action); got != tc.allowed {
			t.Errorf("Allowed(%s, %s) = %v, want %v", tc.role, tc.action, got, tc.allowed)
		}
	}
}

func TestPolicyDeniesUnknownRoleAndAction(t *testing.T) {
	if Allowed(Role("guest"), ActionCourseRead) {
		t.Fatal("unknown role must be denied")
	}
	if Allowed(RoleAdmin, Action("course.publish")) {
		t.Fatal("unknown action must be denied")
	}
}
