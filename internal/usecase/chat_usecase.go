package usecase

import "context"

// Reply is the single wire shape every chat request resolves to. The field
// names are fixed by the frontend: objectArray carries candidate records,
// action is one of click_to_redirect / refresh_memory / call_admin, and
// warning signals a business or system failure.
type Reply struct {
	Response    string   `json:"response,omitempty"`
	ObjectArray []any    `json:"objectArray,omitempty"`
	Action      string   `json:"action,omitempty"`
	EntryStatus string   `json:"entry_status,omitempty"`
	Context     any      `json:"context,omitempty"`
	Warning     *Warning `json:"warning,omitempty"`
}

// Warning is the error half of the reply contract.
type Warning struct {
	Text   string `json:"text"`
	Action string `json:"action,omitempty"`
}

// ChatUsecase routes one chat message through intent extraction to the
// lookup or transaction flow. It never returns an error: every failure is
// folded into the reply so the transport always emits exactly one
// well-formed JSON object.
type ChatUsecase interface {
	Handle(ctx context.Context, message string) *Reply
}
