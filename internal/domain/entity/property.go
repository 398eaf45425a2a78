package entity

import (
	"time"
)

type Property struct {
	ID          string  `json:"id" firestore:"id"`
	Title       string  `json:"title" firestore:"title"`
	Description string  `json:"description" firestore:"description"`
	Address     string  `json:"address" firestore:"address"`
	Price       float64 `json:"price" firestore:"price"`
	Contact     string  `json:"contact" firestore:"contact"`
	Email       string  `json:"email" firestore:"email"`
	Type        string  `json:"type" firestore:"type"`
	Bathrooms   int     `json:"no_of_bath" firestore:"noOfBath"`
	Bedrooms    int     `json:"no_of_bed" firestore:"noOfBed"`
	SquareFeet  string  `json:"square_feet" firestore:"squareFeet"`

	Amenities []string `json:"amenities" firestore:"amenities"`

	// Proximity fields, free-form distances as entered by the owner.
	Metro    string `json:"metro" firestore:"metro"`
	BusStand string `json:"bus_stand" firestore:"busStand"`
	Hospital string `json:"hospital" firestore:"hospital"`
	School   string `json:"school" firestore:"school"`
	Market   string `json:"market" firestore:"market"`
	Others   string `json:"others" firestore:"others"`

	// Photos keeps the upload order of the original request.
	Photos []string `json:"photos" firestore:"photos"`
	Owner  string   `json:"owner" firestore:"owner"`

	// Likes holds liker user ids with set semantics; Liked mirrors its length.
	Likes []string `json:"likes" firestore:"likes"`
	Liked int      `json:"liked" firestore:"liked"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (p *Property) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
