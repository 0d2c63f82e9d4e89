package domain

import "time"

// Subscriber is a telegram chat that receives a message after every submit.
type Subscriber struct {
	ChatID    int64     `json:"chatId"`
	FirstName string    `json:"firstName"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
