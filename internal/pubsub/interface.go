package pubsub

import "context"

// PubSubClient publishes tournament events. The service itself only
// publishes; ProcessMessage is the decoding half for subscribers that read
// the msgpack payloads back into the event types of this package.
type PubSubClient interface {
	SendMessage(ctx context.Context, topic EventType, data any) error
	// ProcessMessage decodes a message body published by SendMessage into
	// returnValue, which must be a pointer to the matching event struct.
	ProcessMessage(data []byte, returnValue any) error
	Close() error
}
