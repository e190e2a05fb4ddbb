package entity

// Admin is a back-office operator of the business.
type Admin struct {
	UserID      string `json:"userId"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Address     string `json:"address,omitempty"`
	Role        string `json:"role,omitempty"`
}

func (a Admin) DisplayName() string {
	return a.FullName
}
