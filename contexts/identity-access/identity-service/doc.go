// Package identity owns accounts and credentials: student self-registration,
// login/logout with bearer tokens, admin account management, and the
// enrollment-status confirmation document.
//
// Layering follows the academics services (domain, application, ports,
// adapters, transport).
//
// Boundary notes:
// - Password hashes never leave the domain entity's PasswordHash field and
//   are never serialized by any transport DTO.
// - A bearer token is only valid while its token row exists; logout deletes
//   the row, which revokes the signed token immediately.
package identity
