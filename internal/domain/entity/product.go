package entity

import "time"

// Product is a listed artwork, owned by the artist identity that created it.
type Product struct {
	ID               string    `firestore:"-" json:"id"`
	ArtistID         string    `firestore:"artistId" json:"artistId"`
	Title            string    `firestore:"title" json:"title"`
	Description      string    `firestore:"description" json:"description"`
	Price            float64   `firestore:"price" json:"price"`
	Stock            int       `firestore:"stock" json:"stock"`
	Category         string    `firestore:"category" json:"category"`
	Image            string    `firestore:"image" json:"image"`
	Images           []string  `firestore:"images" json:"images"`
	ArtStory         string    `firestore:"artStory" json:"artStory"`
	CareInstructions string    `firestore:"careInstructions" json:"careInstructions"`
	CulturalContext  string    `firestore:"culturalContext" json:"culturalContext"`
	Featured         bool      `firestore:"featured,omitempty" json:"featured,omitempty"`
	CreatedAt        time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `firestore:"updatedAt" json:"updatedAt"`
}
