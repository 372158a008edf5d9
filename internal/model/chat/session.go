package chat

import "time"

// Session captures the conversation handle metadata bound to one user.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"createdAt"`
}
