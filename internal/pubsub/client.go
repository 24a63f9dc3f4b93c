package pubsub

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// New connects to Google Cloud Pub/Sub. Without a project id events are only
// encoded and logged.
func New(ctx context.Context, projectID, topicPrefix string) (PubSubClient, error) {
	if projectID == "" {
		log.Info("No GCP project configured, tournament events will only be logged")
		return &logClient{topicPrefix: topicPrefix}, nil
	}
	pubSubC, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	return &client{
		client:      pubSubC,
		topicPrefix: topicPrefix,
		topics:      make(map[string]*pubsub.Topic),
	}, nil
}

// TopicName is the Pub/Sub topic an event type is published on.
func TopicName(prefix string, event EventType) string {
	if prefix == "" {
		return string(event)
	}
	return prefix + "-" + string(event)
}

func (c *client) topic(name string) *pubsub.Topic {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.topics[name]
	if !ok {
		t = c.client.Topic(name)
		c.topics[name] = t
	}
	return t
}

func (c *client) SendMessage(ctx context.Context, event EventType, data any) error {
	msgpackData, err := msgpack.Marshal(data)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}
	name := TopicName(c.topicPrefix, event)
	message := &pubsub.Message{
		Data:       msgpackData,
		Attributes: map[string]string{"event": string(event)},
	}
	result := c.topic(name).Publish(ctx, message)
	serverID, err := result.Get(ctx)
	if err != nil {
		log.Error("Failed to publish message", "error", err, "topic", name)
		return err
	}
	log.Info("SendMessage", "serverID", serverID, "topic", name)
	return nil
}

func (c *client) ProcessMessage(data []byte, returnValue any) error {
	return decode(data, returnValue)
}

func (c *client) Close() error {
	c.mu.Lock()
	for _, t := range c.topics {
		t.Stop()
	}
	c.mu.Unlock()
	return c.client.Close()
}

// logClient encodes events like the real client but only logs them.
type logClient struct {
	topicPrefix string
}

func (c *logClient) SendMessage(ctx context.Context, event EventType, data any) error {
	msgpackData, err := msgpack.Marshal(data)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}
	log.Debug("Event not published, no pubsub project", "topic", TopicName(c.topicPrefix, event), "bytes", len(msgpackData))
	return nil
}

func (c *logClient) ProcessMessage(data []byte, returnValue any) error {
	return decode(data, returnValue)
}

func (c *logClient) Close() error {
	return nil
}

func decode(data []byte, returnValue any) error {
	// Unmarshal the MessagePack data into the provided pointer struct
	err := msgpack.Unmarshal(data, returnValue)
	if err != nil {
		log.Error("MessagePack unmarshal error", "error", err)
		return err
	}
	return nil
}
