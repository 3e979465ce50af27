// Package models defines the persisted FinanzApp entities. JSON field names
// match the original FinanzApp storage layout verbatim, so data written by
// earlier versions of the application keeps round-tripping unchanged.
package models

import "time"

// User statuses as stored on the wire.
const (
	UserStatusActive = "activo"
)

// DefaultRoleID is assigned to every self-registered user.
const DefaultRoleID = 1

// User is a registered account. PasswordHash holds a bcrypt hash; the
// original stored the plaintext password under the same JSON key, which is
// the one deliberate deviation from the legacy format.
type User struct {
	ID             string    `json:"idUsuario"`
	FirstName      string    `json:"nombre"`
	LastName       string    `json:"apellido"`
	Email          string    `json:"correo"`
	PasswordHash   string    `json:"password"`
	Phone          string    `json:"telefono"`
	IdentityNumber string    `json:"numeroIdentificacion"`
	IdentityType   string    `json:"tipoIdentificacion"`
	Status         string    `json:"estado"`
	RegisteredAt   time.Time `json:"fechaRegistro"`
	RoleID         int       `json:"idRol"`
}

// Session is the single persisted "currently logged in" slot: a full
// snapshot of the user plus a signed token bounding the session lifetime.
// The snapshot is a copy, not a reference; services that mutate the
// logged-in user's record must re-write the session explicitly.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
