package service

// Metrics records service-level counters. Implementations must be safe for concurrent use.
type Metrics interface {
	// LoginAttempt counts a login by outcome code, "ok" on success.
	LoginAttempt(outcome string)
	// ContentMutation counts a committed create, update or delete.
	ContentMutation(kind, operation string)
	// SubscriptionOpened and SubscriptionClosed track active live subscriptions.
	SubscriptionOpened(collection string)
	SubscriptionClosed(collection string)
	// SnapshotDelivered counts snapshots handed to a subscriber.
	SnapshotDelivered(collection string)
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) LoginAttempt(string)            {}
func (NopMetrics) ContentMutation(string, string) {}
func (NopMetrics) SubscriptionOpened(string)      {}
func (NopMetrics) SubscriptionClosed(string)      {}
func (NopMetrics) SnapshotDelivered(string)       {}
