package notify

// CompositeNotifier fans a notification out to several notifiers.
type CompositeNotifier struct {
	notifiers []Notifier
}

// NewCompositeNotifier creates a composite around the given notifiers.
func NewCompositeNotifier(notifiers ...Notifier) *CompositeNotifier {
	return &CompositeNotifier{notifiers: notifiers}
}

// AddNotifier appends another destination.
func (c *CompositeNotifier) AddNotifier(n Notifier) {
	c.notifiers = append(c.notifiers, n)
}

func (c *CompositeNotifier) Info(message string) {
	for _, n := range c.notifiers {
		n.Info(message)
	}
}

func (c *CompositeNotifier) Error(message string) {
	for _, n := range c.notifiers {
		n.Error(message)
	}
}
