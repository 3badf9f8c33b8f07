package entity

import "time"

// Application is a work-with-us submission from an aspiring artist.
type Application struct {
	ID              string    `firestore:"-" json:"id"`
	UserID          string    `firestore:"userId" json:"userId"`
	ArtistName      string    `firestore:"artistName" json:"artistName"`
	Email           string    `firestore:"email" json:"email"`
	ArtForm         string    `firestore:"artForm" json:"artForm"`
	Region          string    `firestore:"region" json:"region"`
	YearsOfPractice int       `firestore:"yearsOfPractice" json:"yearsOfPractice"`
	Bio             string    `firestore:"bio" json:"bio"`
	Portfolio       []string  `firestore:"portfolio" json:"portfolio"`
	MobileNumber    string    `firestore:"mobileNumber" json:"mobileNumber"`
	Status          string    `firestore:"status" json:"status"`
	CreatedAt       time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `firestore:"updatedAt" json:"updatedAt"`
}
