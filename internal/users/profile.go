package users

// Profile holds a user's display name. It is a plain value type: every read
// from a User returns an independent copy and every write stores one, so a
// caller can never mutate the user's stored profile through an old reference.
type Profile struct {
	FirstName string
	LastName  string
}

// Copy returns an independent copy of the profile. All fields are value
// types today, but boundary crossings go through Copy so the isolation
// guarantee survives future mutable fields.
func (p Profile) Copy() Profile {
	return p
}
