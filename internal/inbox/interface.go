package inbox

// Inbox holds in-app messages per player.
type Inbox interface {
	Push(recipient, text string) (Message, error)
	// ListFor returns the recipient's messages, newest first.
	ListFor(recipient string) ([]Message, error)
	UnreadCount(recipient string) (int, error)
	MarkAllRead(recipient string) error
	ClearFor(recipient string) error
}
