// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"

	"ai-stylist-be/pkg/styling/vibe"
)

type UserRole string
type UserStatus string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id                uuid.UUID
	Email             string
	FullName          string
	Role              UserRole
	Status            UserStatus
	AvatarURL         *string
	StyleVibes        []vibe.Vibe // normalized preference vibes, priority order
	ScansUsed         int
	WardrobeAddsUsed  int
	ScanLimitOverride *int // nullable admin override, -1 = unlimited
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
