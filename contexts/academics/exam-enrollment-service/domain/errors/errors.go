package errors

import "errors"

var (
	ErrAlreadyEnrolled    = errors.New("exam already enrolled")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)
