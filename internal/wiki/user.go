package wiki

// User is the acting account of an edit.
type User struct {
	ID   int
	Name string
	Bot  bool
}

// IsAnonymous reports whether the user is a logged-out editor.
func (u User) IsAnonymous() bool {
	return u.ID == 0
}

// UserPage returns the title of the user's page.
func (u User) UserPage() (Title, error) {
	return NewTitle("User:" + u.Name)
}
