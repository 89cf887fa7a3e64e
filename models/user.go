package models

import "time"

// User is a profile as the reminder engine sees it. Credential issuance
// lives elsewhere; the server only verifies bearer tokens against TokenHash.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	DisplayName  string    `bson:"displayName" json:"display_name"`
	Email        string    `bson:"email" json:"email"`
	TokenHash    string    `bson:"tokenHash" json:"-"`
	PushPlayerID string    `bson:"pushPlayerId,omitempty" json:"push_player_id,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updated_at"`
}

// SenderName is the heading shown on a friend reminder push: the display
// name when set, otherwise the username.
func (u *User) SenderName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
