package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is read-only here: identity, roles, and authentication live outside
// the checkout core. It is consulted only to prefill billing contact details.
type User struct {
	Id        uuid.UUID
	Email     string
	FullName  string
	Phone     string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
