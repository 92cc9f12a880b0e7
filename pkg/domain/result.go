package domain

// Action is the named outcome of routing a single inbound message
type Action string

// gating outcomes, no reply is sent
const (
	ActionAIGloballyDisabled Action = "ai_globally_disabled"
	ActionDebugModeIgnored   Action = "debug_mode_ignored"
	ActionAIPaused           Action = "ai_paused"
)

// customer outcomes
const (
	ActionPriceFound            Action = "price_found"
	ActionItemNotFound          Action = "item_not_found"
	ActionSimilarItemsFound     Action = "similar_items_found"
	ActionHumanSupportRequested Action = "human_support_requested"
	ActionGreetingSent          Action = "greeting_sent"
	ActionGeneralResponse       Action = "general_response"
	ActionFallbackResponse      Action = "fallback_response"
	ActionProcessingFailed      Action = "processing_failed"
)

// admin outcomes
const (
	ActionItemAdded      Action = "item_added"
	ActionItemEdited     Action = "item_edited"
	ActionItemRemoved    Action = "item_removed"
	ActionItemsListed    Action = "items_listed"
	ActionHelpSent       Action = "help_sent"
	ActionNumberPaused   Action = "number_paused"
	ActionNumberResumed  Action = "number_resumed"
	ActionPausedListed   Action = "paused_listed"
	ActionGlobalPaused   Action = "global_paused"
	ActionGlobalResumed  Action = "global_resumed"
	ActionInvalidCommand Action = "invalid_command"
	ActionRegularMessage Action = "regular_message"
)

// Conversational reports whether the outcome belongs in the sender's conversation history
func (a Action) Conversational() bool {
	switch a {
	case ActionPriceFound, ActionItemNotFound, ActionSimilarItemsFound, ActionGreetingSent, ActionGeneralResponse:
		return true
	default:
		return false
	}
}

// Gated reports whether the message was dropped before dispatch
func (a Action) Gated() bool {
	return a == ActionAIGloballyDisabled || a == ActionDebugModeIgnored || a == ActionAIPaused
}

// Result is what the routing engine reports back to the transport layer
type Result struct {
	Success bool   `json:"success"`
	Action  Action `json:"action"`
	Err     error  `json:"-"`
}

// Error returns the error message, empty on success
func (r Result) Error() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
