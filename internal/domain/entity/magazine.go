package entity

import "time"

// Magazine is a published magazine issue. Publishing is superuser-only.
type Magazine struct {
	ID          string    `firestore:"-" json:"id"`
	Issue       int       `firestore:"issue" json:"issue"`
	Title       string    `firestore:"title" json:"title"`
	Description string    `firestore:"description" json:"description"`
	CoverImage  string    `firestore:"coverImage" json:"coverImage"`
	Content     string    `firestore:"content" json:"content"`
	Articles    []string  `firestore:"articles" json:"articles"`
	ReleaseDate time.Time `firestore:"releaseDate" json:"releaseDate"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}
