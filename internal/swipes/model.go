package swipes

import "time"

// Decision actions. The storage layer enforces the same closed set.
const (
	ActionLike = "like"
	ActionPass = "pass"
)

// Swipe is one user's latest decision on one profile. Re-deciding the same
// profile overwrites the previous action.
type Swipe struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProfileID string    `json:"profileId"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidAction reports whether the action is one of the closed set.
func ValidAction(action string) bool {
	return action == ActionLike || action == ActionPass
}
