package entity

import (
	"time"
)

type User struct {
	ID           string `json:"id" firestore:"id"`
	Name         string `json:"name" firestore:"name"`
	Email        string `json:"email" firestore:"email"`
	PhoneNumber  string `json:"phoneNumber" firestore:"phoneNumber"`
	Username     string `json:"username" firestore:"username"`
	PasswordHash string `json:"-" firestore:"passwordHash"`

	// Denormalized id lists; referenced documents may have been deleted,
	// so readers skip ids that no longer resolve.
	Properties []string `json:"properties" firestore:"properties"`
	Likes      []string `json:"likes" firestore:"likes"`
	Enquiries  []string `json:"enquiry" firestore:"enquiry"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
