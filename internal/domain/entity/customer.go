package entity

// Customer is an end client who buys or returns cylinders.
type Customer struct {
	UserID          string   `json:"userId"`
	FullName        string   `json:"fullName"`
	PhoneNumber     string   `json:"phoneNumber,omitempty"`
	Address         string   `json:"address,omitempty"`
	ShippingAddress []string `json:"shippingAddress,omitempty"`
	Email           string   `json:"email,omitempty"`
}

func (c Customer) DisplayName() string {
	return c.FullName
}

// PrimaryAddress prefers the first shipping address over the base address.
func (c Customer) PrimaryAddress() string {
	if len(c.ShippingAddress) > 0 {
		return c.ShippingAddress[0]
	}

	return c.Address
}
