package teacher

// Teacher is an identity record in the teachers collection, keyed by a
// username-like _id. This service only ever reads it.
type Teacher struct {
	ID       string `bson:"_id"`
	Username string `bson:"username,omitempty"`
	Name     string `bson:"name,omitempty"`
	Email    string `bson:"email,omitempty"`
}

// DisplayName is the name recorded on announcements the teacher creates:
// the username field when present, otherwise the store identifier.
func (t *Teacher) DisplayName() string {
	if t.Username != "" {
		return t.Username
	}
	return t.ID
}
