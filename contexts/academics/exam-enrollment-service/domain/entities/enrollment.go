package entities

import "time"

// Enrollment links a student account to a course exam. Grade stays nil
// until the exam is graded.
type Enrollment struct {
	ID         string
	StudentID  string
	CourseID   string
	EnrolledAt time.Time
	Grade      *int
}
