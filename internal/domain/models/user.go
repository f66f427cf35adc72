// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a signed-in identity. Capabilities are the named permissions
// checked by authz; they are stored lowercased.
type User struct {
	ID           primitive.ObjectID `bson:"_id"`
	LoginID      string             `bson:"login_id"`
	LoginIDCI    string             `bson:"login_id_ci"` // ← always stored
	FullName     string             `bson:"full_name"`
	PasswordHash string             `bson:"password_hash"`
	Capabilities []string           `bson:"capabilities"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// HasCapability reports whether u holds capability c.
func (u User) HasCapability(c string) bool {
	for _, have := range u.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}
