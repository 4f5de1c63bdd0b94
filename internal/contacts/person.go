package contacts

// PersonContact is an individual in the user's list, annotated with the
// relationship to the owner (e.g. Friend, Family, Colleague).
type PersonContact struct {
	details
	relationship string
}

func NewPersonContact(name, phoneNumber, email, relationship string) *PersonContact {
	return &PersonContact{
		details:      newDetails(name, phoneNumber, email),
		relationship: relationship,
	}
}

func (c *PersonContact) Relationship() string { return c.relationship }

func (c *PersonContact) SetRelationship(relationship string) {
	c.relationship = relationship
}

func (c *PersonContact) ContactType() string { return "Person" }

func (c *PersonContact) DisplayDetails() string {
	return c.displayDetails() + " | Relation: " + c.relationship
}
