package domain

// ReplyContext is what the reply generator gets besides the message text
type ReplyContext struct {
	Catalog []Item
	History []Turn
	IsAdmin bool
}

// Reply is a generated answer. Text is cleaned for sending, Raw is the model output as is.
type Reply struct {
	Text string
	Raw  string
}
