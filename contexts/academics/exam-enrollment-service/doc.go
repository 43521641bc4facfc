// Package examenrollment owns the exam-enrollment ledger: which student has
// enrolled for which course's exam, when, and with what grade.
//
// Layering follows the other academics services (domain, application,
// ports, adapters, transport).
//
// Boundary notes:
// - At most one enrollment per (student, course) pair; the store's composite
//   unique index is the authoritative guard, the application check only
//   produces the friendlier conflict message.
// - Course data is read through the CourseDirectory port; the ledger never
//   writes course state.
package examenrollment
