package domain

// Session is the locally held record of the authenticated user.
type Session struct {
	UserID      string `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username,omitempty"`
	IsAdmin     bool   `json:"isAdmin"`
	AccessToken string `json:"accessToken,omitempty"`
}

func (s Session) Valid() bool {
	return s.UserID != "" && s.Email != ""
}

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
	IsActive bool   `json:"isActive"`
}

// DisplayName prefers the full name the way the customer list shows it.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

type AuthPayload struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

func (p AuthPayload) Session() Session {
	return Session{
		UserID:      p.User.ID,
		Email:       p.User.Email,
		Username:    p.User.Username,
		IsAdmin:     p.User.IsAdmin,
		AccessToken: p.AccessToken,
	}
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Registration struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}
