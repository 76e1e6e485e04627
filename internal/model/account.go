package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account is an identity-provider record: the credential side of a user.
// Every account has a mirrored User document sharing the same id; the mirror
// can be missing when provisioning was interrupted, which callers must treat
// as NotFound.
type Account struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
