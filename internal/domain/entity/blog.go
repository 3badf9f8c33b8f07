package entity

import "time"

// BlogPost is an artroom story. Only published posts are publicly readable.
type BlogPost struct {
	ID            string    `firestore:"-" json:"id"`
	Title         string    `firestore:"title" json:"title"`
	Content       string    `firestore:"content" json:"content"`
	Category      string    `firestore:"category" json:"category"`
	FeaturedImage string    `firestore:"featuredImage" json:"featuredImage"`
	Images        []string  `firestore:"images" json:"images"`
	Published     bool      `firestore:"published" json:"published"`
	Author        string    `firestore:"author" json:"author"`
	AuthorID      string    `firestore:"authorId" json:"authorId"`
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}
