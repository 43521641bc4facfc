package errors

import "errors"

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrCodeTaken      = errors.New("course code already taken")
)
