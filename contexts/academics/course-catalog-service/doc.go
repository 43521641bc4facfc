// Package coursecatalog owns the course catalog: admin-managed course
// records and the public search over them.
//
// Layering:
// - domain: course entity, invariants, errors
// - application: commands/queries using explicit ports
// - ports: stable boundaries for persistence and id/clock concerns
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Course code uniqueness is enforced by the store's unique index; the
//   application-level check only produces the friendlier field error.
// - Dependent exam enrollments are purged through a port before a course
//   row is removed, so no enrollment can reference a missing course.
package coursecatalog
