package messaging

// NotificationKind classifies a transient user-facing notice.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is the fire-and-forget toast payload sent over SSE after
// mutation attempts. No delivery guarantee.
type Notification struct {
	Type    string           `json:"type"`
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}

// Notifier is the notification side-channel consumed by the mutation
// services.
type Notifier struct {
	broadcaster *SSEBroadcaster
}

// NewNotifier creates a notifier over the given broadcaster.
func NewNotifier(broadcaster *SSEBroadcaster) *Notifier {
	return &Notifier{broadcaster: broadcaster}
}

// Success raises a transient success notice.
func (n *Notifier) Success(message string) {
	n.broadcaster.Broadcast(Notification{Type: "notification", Kind: NotifySuccess, Message: message})
}

// Error raises a transient failure notice.
func (n *Notifier) Error(message string) {
	n.broadcaster.Broadcast(Notification{Type: "notification", Kind: NotifyError, Message: message})
}
