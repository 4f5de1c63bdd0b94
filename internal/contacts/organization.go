package contacts

// OrganizationContact is a business or organization in the user's list.
type OrganizationContact struct {
	details
	website string
}

func NewOrganizationContact(name, phoneNumber, email, website string) *OrganizationContact {
	return &OrganizationContact{
		details: newDetails(name, phoneNumber, email),
		website: website,
	}
}

func (c *OrganizationContact) Website() string { return c.website }

func (c *OrganizationContact) SetWebsite(website string) {
	c.website = website
}

func (c *OrganizationContact) ContactType() string { return "Organization" }

func (c *OrganizationContact) DisplayDetails() string {
	return c.displayDetails() + " | Website: " + c.website
}
