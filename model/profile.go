// Package model - profile types returned by the per-role profile endpoints
package model

// Profile is the role-specific user detail fetched after authentication,
// distinct from the session user record.
type Profile struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"profile_picture,omitempty"`
	Role      Role   `json:"role"`

	// Member fields
	MembershipID  string  `json:"membership_id,omitempty"`
	BorrowedCount int     `json:"borrowed_count,omitempty"`
	FinesDue      float64 `json:"fines_due,omitempty"`

	// Librarian fields
	Branch       string `json:"branch,omitempty"`
	ShelvedCount int    `json:"shelved_count,omitempty"`

	// Admin fields
	Permissions []string `json:"permissions,omitempty"`
}

// ProfileResponse is the envelope the frontend shell consumes.
type ProfileResponse struct {
	Success bool    `json:"success"`
	Data    Profile `json:"data"`
}
