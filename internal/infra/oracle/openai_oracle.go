// Package oracle implements the intent-extraction collaborator on the
// OpenAI chat-completion API with function-calling tools.
package oracle

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"fuelflow/config"
	"fuelflow/internal/domain/intent"
	"fuelflow/internal/domain/service"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	domainerrors "fuelflow/internal/domain/errors"
)

const systemPrompt = "You are the assistant of a fuel-cylinder delivery business. " +
	"Operators tell you about deliveries, returns and payments in free text, or ask " +
	"for customer, admin, delivery person or product records. Use the provided tools " +
	"for any actionable request; answer directly only when no tool applies."

type openAIOracle struct {
	client      *openai.Client
	logger      *slog.Logger
	limiter     *rate.Limiter
	model       string
	temperature float32
	timeout     time.Duration
}

// NewOpenAIOracle builds the oracle from the configured API key, model and
// client-side rate limit.
func NewOpenAIOracle(cfg *config.Config, logger *slog.Logger) service.IntentOracle {
	return &openAIOracle{
		client:      openai.NewClient(cfg.OpenAI.APIKey),
		logger:      logger,
		limiter:     rate.NewLimiter(rate.Limit(cfg.OpenAI.RequestsPerSecond), cfg.OpenAI.Burst),
		model:       cfg.OpenAI.Model,
		temperature: cfg.OpenAI.Temperature,
		timeout:     cfg.OpenAI.Timeout,
	}
}

// Extract sends the message with the declared tools and maps the model's
// answer to an intent. A plain text answer becomes SmallTalk.
func (o *openAIOracle) Extract(ctx context.Context, message string) (intent.Intent, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiter")
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: o.temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: message,
			},
		},
		Tools: agentTools,
	})
	if err != nil {
		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}

	if len(resp.Choices) == 0 {
		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage("model returned no candidates")
	}

	choice := resp.Choices[0].Message
	if len(choice.ToolCalls) == 0 {
		return intent.SmallTalk{Text: choice.Content}, nil
	}

	call := choice.ToolCalls[0].Function
	o.logger.Debug("function call triggered",
		slog.String("name", call.Name),
		slog.String("arguments", call.Arguments),
	)

	extracted, err := ParseToolCall(call.Name, call.Arguments)
	if err != nil {
		return nil, err
	}

	return extracted, nil
}

// ParseToolCall maps a tool call name plus its JSON arguments to the intent
// union. Unknown names mean the declared tool set and this mapping drifted
// apart.
func ParseToolCall(name, arguments string) (intent.Intent, error) {
	switch name {
	case "process_transaction":
		var args struct {
			CustomerName    string `json:"customer_name"`
			DeliveryBoyName string `json:"delivery_boy_name"`
			ProductName     string `json:"product_name"`
			SentUnits       int    `json:"sent_units"`
			ReceivedUnits   int    `json:"received_units"`
			PaymentAmount   *int   `json:"payment_amount"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return nil, errors.Wrapf(err, "parse %s arguments", name)
		}

		return intent.ProcessTransaction{
			CustomerName:       args.CustomerName,
			DeliveryPersonName: args.DeliveryBoyName,
			ProductName:        args.ProductName,
			SentUnits:          args.SentUnits,
			ReceivedUnits:      args.ReceivedUnits,
			PaymentAmount:      args.PaymentAmount,
		}, nil

	case "get_customer_details":
		var args struct {
			CustomerName string `json:"customer_name"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return nil, errors.Wrapf(err, "parse %s arguments", name)
		}

		return intent.GetCustomerDetails{CustomerName: args.CustomerName}, nil

	case "get_admin_details":
		var args struct {
			AdminName string `json:"admin_name"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return nil, errors.Wrapf(err, "parse %s arguments", name)
		}

		return intent.GetAdminDetails{AdminName: args.AdminName}, nil

	case "get_delivery_person_details":
		var args struct {
			DeliveryBoyName string `json:"delivery_boy_name"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return nil, errors.Wrapf(err, "parse %s arguments", name)
		}

		return intent.GetDeliveryPersonDetails{DeliveryPersonName: args.DeliveryBoyName}, nil

	case "get_product_details":
		var args struct {
			ProductName string `json:"product_name"`
		}
		if err := json.Unmarshal([]byte(arguments), &args); err != nil {
			return nil, errors.Wrapf(err, "parse %s arguments", name)
		}

		return intent.GetProductDetails{ProductName: args.ProductName}, nil

	case "refresh_memory":
		return intent.RefreshMemory{}, nil

	default:
		return nil, errors.Errorf("model called undeclared tool %q", name)
	}
}
