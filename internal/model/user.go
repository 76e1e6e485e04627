package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles recognized on a User document. A document without a role is treated
// as staff.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User mirrors an identity account in the users collection. The document id
// is identical to the account id it mirrors.
type User struct {
	ID                          primitive.ObjectID `bson:"_id,omitempty" json:"uid"`
	Email                       string             `bson:"email" json:"email"`
	Name                        string             `bson:"name,omitempty" json:"name,omitempty"`
	Role                        string             `bson:"role,omitempty" json:"role"`
	SubscribedToPrivateCalendar bool               `bson:"subscribedToPrivateCalendar,omitempty" json:"subscribedToPrivateCalendar"`
	CreatedAt                   time.Time          `bson:"createdAt" json:"createdAt"`
	LastLogin                   time.Time          `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
}

// EffectiveRole returns the role with the staff default applied.
func (u *User) EffectiveRole() string {
	if u.Role == "" {
		return RoleStaff
	}
	return u.Role
}

// IsAdmin reports whether the user may perform admin-only operations.
func (u *User) IsAdmin() bool {
	return u.EffectiveRole() == RoleAdmin
}
