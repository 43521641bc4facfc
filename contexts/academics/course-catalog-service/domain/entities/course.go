package entities

import "time"

// Course is a catalog entry students can enroll against.
// Semester and Year are optional: older course rows predate both columns.
type Course struct {
	ID        string
	Name      string
	Code      string
	Credits   int
	Semester  *int
	Year      *int
	CreatedAt time.Time
	UpdatedAt time.Time
}
