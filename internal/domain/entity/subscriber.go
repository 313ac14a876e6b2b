package entity

import (
	"time"
)

type Subscriber struct {
	Email        string    `json:"email" firestore:"email"`
	SubscribedAt time.Time `json:"subscribed_at" firestore:"subscribedAt"`
}
