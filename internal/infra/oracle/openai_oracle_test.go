package oracle

import (
	"testing"

	"fuelflow/internal/domain/intent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToolCall_ProcessTransaction(t *testing.T) {
	arguments := `{
		"customer_name": "Rakesh",
		"delivery_boy_name": "Sweta",
		"product_name": "LPG 14KG",
		"sent_units": 2,
		"received_units": 1,
		"payment_amount": 500
	}`

	extracted, err := ParseToolCall("process_transaction", arguments)
	require.NoError(t, err)

	it, ok := extracted.(intent.ProcessTransaction)
	require.True(t, ok)
	assert.Equal(t, "Rakesh", it.CustomerName)
	assert.Equal(t, "Sweta", it.DeliveryPersonName)
	assert.Equal(t, "LPG 14KG", it.ProductName)
	assert.Equal(t, 2, it.SentUnits)
	assert.Equal(t, 1, it.ReceivedUnits)
	require.NotNil(t, it.PaymentAmount)
	assert.Equal(t, 500, *it.PaymentAmount)
}

func TestParseToolCall_ProcessTransaction_NoPayment(t *testing.T) {
	arguments := `{"customer_name": "Rakesh", "product_name": "LPG 14KG", "sent_units": 2}`

	extracted, err := ParseToolCall("process_transaction", arguments)
	require.NoError(t, err)

	it, ok := extracted.(intent.ProcessTransaction)
	require.True(t, ok)
	assert.Nil(t, it.PaymentAmount)
	assert.Empty(t, it.DeliveryPersonName)
}

func TestParseToolCall_LookupIntents(t *testing.T) {
	tests := []struct {
		name      string
		arguments string
		want      intent.Intent
	}{
		{
			name:      "get_customer_details",
			arguments: `{"customer_name": "Rakesh"}`,
			want:      intent.GetCustomerDetails{CustomerName: "Rakesh"},
		},
		{
			name:      "get_admin_details",
			arguments: `{"admin_name": "Priya"}`,
			want:      intent.GetAdminDetails{AdminName: "Priya"},
		},
		{
			name:      "get_delivery_person_details",
			arguments: `{"delivery_boy_name": "Sweta"}`,
			want:      intent.GetDeliveryPersonDetails{DeliveryPersonName: "Sweta"},
		},
		{
			name:      "get_product_details",
			arguments: `{"product_name": "LPG 14KG"}`,
			want:      intent.GetProductDetails{ProductName: "LPG 14KG"},
		},
		{
			name:      "refresh_memory",
			arguments: `{}`,
			want:      intent.RefreshMemory{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extracted, err := ParseToolCall(tt.name, tt.arguments)
			require.NoError(t, err)
			assert.Equal(t, tt.want, extracted)
		})
	}
}

func TestParseToolCall_UndeclaredTool(t *testing.T) {
	extracted, err := ParseToolCall("launch_rocket", `{}`)
	assert.Nil(t, extracted)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared tool")
}

func TestParseToolCall_MalformedArguments(t *testing.T) {
	extracted, err := ParseToolCall("process_transaction", `{"customer_name": `)
	assert.Nil(t, extracted)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse process_transaction arguments")
}

func TestAgentTools_DeclaredNamesMatchParser(t *testing.T) {
	for _, tool := range agentTools {
		_, err := ParseToolCall(tool.Function.Name, `{}`)
		assert.NoError(t, err, tool.Function.Name)
	}
}
