package oracle

import (
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// agentTools declares the function set the model may call. The schemas are
// part of the frontend-facing contract: argument names feed straight into
// ParseToolCall.
var agentTools = []openai.Tool{
	{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        "process_transaction",
			Description: "Log a business transaction where goods are delivered to a customer or returned by them.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"customer_name": {
						Type:        jsonschema.String,
						Description: "The end client/customer who bought or returned the item. E.g. in 'Sweta delivered to Rakesh', this is Rakesh.",
					},
					"delivery_boy_name": {
						Type:        jsonschema.String,
						Description: "The staff member or delivery person who performed the task. E.g. in 'Sweta delivered to Rakesh', this is Sweta.",
					},
					"product_name": {
						Type:        jsonschema.String,
						Description: "Name of product (e.g. LPG 14KG, Oxygen)",
					},
					"sent_units": {
						Type:        jsonschema.Integer,
						Description: "Quantity SOLD/DELIVERED to customer (OUT). Use this if text says 'delivered', 'gave', 'sold'.",
					},
					"received_units": {
						Type:        jsonschema.Integer,
						Description: "Quantity RETURNED by customer (IN). Use this if text says 'returned', 'got back', 'received from'.",
					},
					"payment_amount": {
						Type:        jsonschema.Integer,
						Description: "Payment collected if any",
					},
				},
				Required: []string{"customer_name", "product_name", "delivery_boy_name"},
			},
		},
	},
	{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        "get_customer_details",
			Description: "Retrieve full profile details for a specific customer by name.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"customer_name": {
						Type:        jsonschema.String,
						Description: "Name of the customer to search for",
					},
				},
				Required: []string{"customer_name"},
			},
		},
	},
	{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        "get_admin_details",
			Description: "Retrieve full profile details for a specific admin by name.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"admin_name": {
						Type:        jsonschema.String,
						Description: "Name of the admin to search for",
					},
				},
				Required: []string{"admin_name"},
			},
		},
	},
	{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        "get_delivery_person_details",
			Description: "Retrieve full profile details for a specific delivery person by name.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"delivery_boy_name": {
						Type:        jsonschema.String,
						Description: "Name of the delivery person to search for",
					},
				},
				Required: []string{"delivery_boy_name"},
			},
		},
	},
	{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        "get_product_details",
			Description: "Retrieve full details for a specific product by name.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"product_name": {
						Type:        jsonschema.String,
						Description: "Name of the product to search for",
					},
				},
				Required: []string{"product_name"},
			},
		},
	},
	{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        "refresh_memory",
			Description: "Reloads the database from the server. Use this when data seems outdated.",
			Parameters: jsonschema.Definition{
				Type:       jsonschema.Object,
				Properties: map[string]jsonschema.Definition{},
			},
		},
	},
}
