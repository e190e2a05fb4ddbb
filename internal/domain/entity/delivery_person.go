package entity

// DeliveryPerson is a staff member who performs deliveries and pickups.
type DeliveryPerson struct {
	UserID      string `json:"userId"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
}

func (d DeliveryPerson) DisplayName() string {
	return d.FullName
}
