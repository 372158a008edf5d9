package chat

import "strings"

// DefaultUserID is used when a request carries no user identifier.
const DefaultUserID = "default"

// ChatRequest is the inbound payload of the chat endpoints.
type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"userId,omitempty"`
}

// ResolvedUserID returns the request's user id, falling back to DefaultUserID.
func (r ChatRequest) ResolvedUserID() string {
	if id := strings.TrimSpace(r.UserID); id != "" {
		return id
	}
	return DefaultUserID
}

// ChatResponse is returned for every processed chat message, including provider failures.
type ChatResponse struct {
	Response string `json:"response"`
	UserID   string `json:"userId"`
}
