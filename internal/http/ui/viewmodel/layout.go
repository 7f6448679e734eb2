package viewmodel

// User represents the authenticated user context exposed to templates.
type User struct {
	Name  string
	Email string
	Role  string
}

// Initials returns up to two initials for the avatar badge.
func (u *User) Initials() string {
	if u == nil {
		return ""
	}
	src := u.Name
	if src == "" {
		src = u.Email
	}
	out := make([]rune, 0, 2)
	start := true
	for _, r := range src {
		switch {
		case r == ' ' || r == '.' || r == '@':
			start = true
		case start && len(out) < 2:
			out = append(out, r)
			start = false
		}
	}
	return string(out)
}

// Layout captures shared chrome metadata (titles, navigation, auth flags, notices).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	IsAdmin         bool
	User            *User
	Sidebar         *Sidebar
	Notice          *Notice
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}
