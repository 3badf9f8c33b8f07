package entity

import "time"

// User is the profile record kept in the record store for every identity.
// Its document ID is always the identity provider UID, which is what makes
// lazy provisioning an idempotent upsert instead of an insert.
type User struct {
	ID        string    `firestore:"-" json:"id"`
	Email     string    `firestore:"email" json:"email"`
	Name      string    `firestore:"name" json:"name"`
	Phone     string    `firestore:"phone,omitempty" json:"phone,omitempty"`
	Avatar    string    `firestore:"avatar,omitempty" json:"avatar,omitempty"`
	Role      Role      `firestore:"role" json:"role"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
