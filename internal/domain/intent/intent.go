// Package intent models the structured operations the oracle extracts from
// free-text chat messages, as a tagged union the router switches over.
package intent

// Intent is one structured operation extracted from a chat message.
type Intent interface {
	// Name returns the wire name of the operation, for logging.
	Name() string
}

// ProcessTransaction logs a delivery (sent units) or return (received units)
// of a product for a customer.
type ProcessTransaction struct {
	CustomerName       string
	DeliveryPersonName string
	ProductName        string
	SentUnits          int
	ReceivedUnits      int

	// PaymentAmount is nil when the message named no payment; the assembler
	// then assumes full payment.
	PaymentAmount *int
}

func (ProcessTransaction) Name() string { return "process_transaction" }

// GetCustomerDetails looks up a customer profile by name.
type GetCustomerDetails struct {
	CustomerName string
}

func (GetCustomerDetails) Name() string { return "get_customer_details" }

// GetAdminDetails looks up an admin profile by name.
type GetAdminDetails struct {
	AdminName string
}

func (GetAdminDetails) Name() string { return "get_admin_details" }

// GetDeliveryPersonDetails looks up a delivery person profile by name.
type GetDeliveryPersonDetails struct {
	DeliveryPersonName string
}

func (GetDeliveryPersonDetails) Name() string { return "get_delivery_person_details" }

// GetProductDetails looks up a product by name.
type GetProductDetails struct {
	ProductName string
}

func (GetProductDetails) Name() string { return "get_product_details" }

// RefreshMemory reloads every cache bucket from the store.
type RefreshMemory struct{}

func (RefreshMemory) Name() string { return "refresh_memory" }

// SmallTalk is a plain conversational reply with no function call behind it.
type SmallTalk struct {
	Text string
}

func (SmallTalk) Name() string { return "small_talk" }
