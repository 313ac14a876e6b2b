package entity

import (
	"time"
)

// Category is referenced from products by name only. Renaming or deleting a
// category does not touch the products pointing at it; dangling
// category_name values are tolerated.
type Category struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Slug        string    `json:"slug" firestore:"slug"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
}
