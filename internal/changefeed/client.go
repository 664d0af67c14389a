package changefeed

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// client implements Feed on Google Cloud Pub/Sub: one topic per collection,
// one fresh pull subscription per Subscribe call.
type client struct {
	client      *pubsub.Client
	topicPrefix string
}

// New creates a change feed backed by Pub/Sub.
func New(projectID string) Feed {
	ctx := context.Background()
	pubSubC, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	return &client{
		client:      pubSubC,
		topicPrefix: "clubsync-",
	}
}

func (c *client) topicName(collection Collection) string {
	return c.topicPrefix + string(collection)
}

// Publish announces a mutation on the collection's topic.
func (c *client) Publish(ctx context.Context, collection Collection, op string) error {
	event := Event{
		Collection: string(collection),
		Op:         op,
		At:         time.Now().Unix(),
	}
	data, err := msgpack.Marshal(event)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}
	result := c.client.Topic(c.topicName(collection)).Publish(ctx, &pubsub.Message{Data: data})
	serverID, err := result.Get(ctx)
	if err != nil {
		log.Error("Failed to publish change event", "error", err, "collection", collection)
		return err
	}
	log.Debug("Published change event", "collection", collection, "op", op, "serverID", serverID)
	return nil
}

// Subscribe creates a uniquely named pull subscription on the collection's
// topic and pumps its messages into onChange. Each call opens a new
// subscription; the caller owns it and must Unsubscribe exactly once.
func (c *client) Subscribe(ctx context.Context, collection Collection, onChange func()) (*Subscription, error) {
	id := fmt.Sprintf("%s%s-%s", c.topicPrefix, collection, uuid.NewString()[:8])
	topic := c.client.Topic(c.topicName(collection))

	pubsubSub, err := c.client.CreateSubscription(ctx, id, pubsub.SubscriptionConfig{
		Topic:            topic,
		AckDeadline:      10 * time.Second,
		ExpirationPolicy: 24 * time.Hour,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription for %s: %w", collection, err)
	}

	recvCtx, cancel := context.WithCancel(context.Background())
	sub := &Subscription{
		ID:         id,
		Collection: collection,
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	go func() {
		defer close(sub.done)
		err := pubsubSub.Receive(recvCtx, func(_ context.Context, msg *pubsub.Message) {
			msg.Ack()
			var event Event
			if err := msgpack.Unmarshal(msg.Data, &event); err != nil {
				log.Error("MessagePack unmarshal error", "error", err, "subscription", id)
				return
			}
			log.Debug("Change event received", "collection", event.Collection, "op", event.Op)
			onChange()
		})
		if err != nil && recvCtx.Err() == nil {
			log.Error("Subscription receive loop ended", "error", err, "subscription", id)
		}
	}()

	log.Info("Subscribed to change feed", "collection", collection, "subscription", id)
	return sub, nil
}

// Unsubscribe stops the receive loop and deletes the remote subscription.
func (c *client) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	sub.cancel()
	<-sub.done

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.client.Subscription(sub.ID).Delete(ctx); err != nil {
		log.Error("Failed to delete subscription", "error", err, "subscription", sub.ID)
	}
	log.Info("Unsubscribed from change feed", "collection", sub.Collection, "subscription", sub.ID)
}

// Close releases the underlying Pub/Sub client.
func (c *client) Close() {
	if err := c.client.Close(); err != nil {
		log.Error("Failed to close pubsub client", "error", err)
	}
}
