package domain

import "time"

// UserStatus describes what kind of reader a user is.
type UserStatus string

const (
	UserStatusStudent    UserStatus = "student"
	UserStatusTeacher    UserStatus = "teacher"
	UserStatusEnthusiast UserStatus = "enthusiast"
)

// UserStatuses contains all valid user statuses.
var UserStatuses = []UserStatus{UserStatusStudent, UserStatusTeacher, UserStatusEnthusiast}

// SocialLinks holds a user's public profile links.
type SocialLinks struct {
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
}

// User represents an account. Role is a free-text reference resolved against
// the role collection by case-insensitive match on role id or name.
type User struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	Role      string      `json:"role"`
	Status    UserStatus  `json:"status,omitempty"`
	JoinedAt  time.Time   `json:"joined_at"`
	Avatar    string      `json:"avatar,omitempty"`
	LastLogin *time.Time  `json:"last_login,omitempty"`
	Bio       string      `json:"bio,omitempty"`
	Social    SocialLinks `json:"social,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	// Password is accepted on creation for the external identity boundary
	// and never serialized or persisted here.
	Password string `json:"-"`
}

// UserUpdate carries the fields of a partial user update.
type UserUpdate struct {
	Name      *string      `json:"name,omitempty"`
	Username  *string      `json:"username,omitempty"`
	Email     *string      `json:"email,omitempty"`
	Role      *string      `json:"role,omitempty"`
	Status    *UserStatus  `json:"status,omitempty"`
	Avatar    *string      `json:"avatar,omitempty"`
	LastLogin *time.Time   `json:"last_login,omitempty"`
	Bio       *string      `json:"bio,omitempty"`
	Social    *SocialLinks `json:"social,omitempty"`
}
