package entity

// Transaction status values. A transaction is Paid when the collected
// payment covers the computed total.
const (
	StatusPaid    = "Paid"
	StatusPending = "Pending"
)

// Transaction is the normalized delivery/return document written once per
// logged event and never updated afterwards.
//
// The JSON field names, including the "recievedUnits" spelling, match the
// existing database schema and the frontend that reads it. Do not fix them.
type Transaction struct {
	Data   TransactionData `json:"data"`
	Others Audit           `json:"others"`
}

type TransactionData struct {
	Customer         TransactionCustomer `json:"customer"`
	Date             string              `json:"date"`
	TransactionID    string              `json:"transactionId"`
	DeliveryBoyList  []DeliveryEntry     `json:"deliveryBoyList"`
	SelectedProducts []SelectedProduct   `json:"selectedProducts"`
	Payment          int                 `json:"payment"`
	Total            int                 `json:"total"`
	Status           string              `json:"status"`
	ImportIndex      int                 `json:"importIndex"`
	ExtraDetails     string              `json:"extraDetails,omitempty"`
}

// TransactionCustomer is the customer snapshot embedded in the document.
type TransactionCustomer struct {
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	UserID      string `json:"userId"`
	Address     string `json:"address"`
}

// DeliveryEntry records which delivery person moved which units.
type DeliveryEntry struct {
	FullName     string         `json:"fullName"`
	UserID       string         `json:"userId"`
	DeliveryDone []DeliveryDone `json:"deliveryDone"`
}

type DeliveryDone struct {
	ProductID     string `json:"productId"`
	SentUnits     int    `json:"sentUnits"`
	ReceivedUnits int    `json:"recievedUnits"`
}

// SelectedProduct embeds the full product record alongside the moved units.
type SelectedProduct struct {
	ProductData   Product `json:"productData"`
	SentUnits     int     `json:"sentUnits"`
	ReceivedUnits int     `json:"recievedUnits"`
	PaymentAmt    int     `json:"paymentAmt"`
}
