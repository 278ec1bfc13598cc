package club

import "time"

// ChatMessage is an append-only entry of a Club's chatroom. Ordering is
// insertion order; messages are never reordered or pruned.
type ChatMessage struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"` // UTC
}

// Club is a record of the "clubs" collection. Uniqueness of Members across
// clubs is enforced by Service.AssignMembers, not by storage.
type Club struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Members  []string      `json:"members"`
	Chatroom []ChatMessage `json:"chatroom"`
}

// HasMember reports whether the given student id is in the members set.
func (c *Club) HasMember(studentID string) bool {
	for _, m := range c.Members {
		if m == studentID {
			return true
		}
	}
	return false
}
