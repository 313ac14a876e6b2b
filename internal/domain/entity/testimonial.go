package entity

import (
	"time"
)

type Testimonial struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Rating    int       `json:"rating" firestore:"rating"`
	Comment   string    `json:"comment" firestore:"comment"`
	Image     string    `json:"image,omitempty" firestore:"image,omitempty"`
	Active    bool      `json:"active" firestore:"active"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
