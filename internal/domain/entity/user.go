// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account of the simulator. The username is the public identity used for
// every ownership check.
type User struct {
	ID           uuid.UUID      // Global identifier of the account.
	Username     string         // Unique login name, compared case-sensitively.
	PasswordHash string         // bcrypt hash, never the plaintext.
	Role         Role           // Authorization role carried into the access token.
	Extension    *UserExtension // Contact data, always present for a registered user.
	GameProfile  *GameProfile   // Game assets and counters, always present for a registered user.
	CreatedAt    time.Time      // Timestamp of when this account was created.
	UpdatedAt    time.Time      // Timestamp of the last modification to this account.
}

// UserExtension holds the contact data of a user.
type UserExtension struct {
	UserID           uuid.UUID // Foreign Key that links this extension to a core User entity.
	Email            string    // Unique contact email.
	RegistrationTime time.Time // Moment the account was registered.
}

// GameProfile is a user's collection of game-domain assets and counters.
// Ships and missions reference it through their OwnerID.
type GameProfile struct {
	UserID            uuid.UUID // Foreign Key that links this profile to a core User entity.
	ShipsNumber       int       // Number of ships ever built by the owner.
	Experience        int64     // Accumulated distance of completed missions.
	CompletedMissions int       // Number of missions that reached COMPLETED.
	UpdatedAt         time.Time // Timestamp of the last modification to this profile.
}

// UserExtensionPatch carries optional replacements for the mutable fields of a UserExtension.
type UserExtensionPatch struct {
	Email *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserExtensionPatch) IsEmpty() bool {
	return p.Email == nil
}

// Apply returns a copy of ext with every non-nil patch field merged in.
func (p UserExtensionPatch) Apply(ext UserExtension) UserExtension {
	if p.Email != nil {
		ext.Email = *p.Email
	}

	return ext
}
