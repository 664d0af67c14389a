package changefeed

import "context"

// Subscriber opens live-update channels per collection. The callback fires
// at least once per remote insert/update/delete affecting that collection
// and carries no payload.
type Subscriber interface {
	Subscribe(ctx context.Context, collection Collection, onChange func()) (*Subscription, error)
	Unsubscribe(sub *Subscription)
}

// Publisher announces that a collection was mutated. The write path calls
// this after every successful insert or update so that every connected
// client converges without manual refresh.
type Publisher interface {
	Publish(ctx context.Context, collection Collection, op string) error
}

// Feed is both halves of the change feed.
type Feed interface {
	Subscriber
	Publisher
	Close()
}
