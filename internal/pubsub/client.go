package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// New connects to Google Cloud Pub/Sub. The returned teardown closes the client.
func New(ctx context.Context, projectID string) (PubSubClient, func(), error) {
	pubSubC, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	teardown := func() {
		if err := pubSubC.Close(); err != nil {
			log.Warn("Error closing pubsub client", "error", err)
		}
	}
	return &client{client: pubSubC}, teardown, nil
}

func (c *client) SendMessage(ctx context.Context, topic string, data any) error {
	message, err := newMessage(topic, data)
	if err != nil {
		return err
	}
	result := c.client.Topic(topic).Publish(ctx, message)
	serverID, err := result.Get(ctx)
	if err != nil {
		log.Error("Failed to publish message", "error", err, "topic", topic)
		return err
	}
	log.Info("SendMessage", "serverID", serverID, "topic", topic)
	return nil
}

// newMessage encodes data with MessagePack and tags it with the topic name.
func newMessage(topic string, data any) (*pubsub.Message, error) {
	msgpackData, err := msgpack.Marshal(data)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return nil, err
	}
	return &pubsub.Message{
		Data:       msgpackData,
		Attributes: map[string]string{eventAttribute: topic},
	}, nil
}

func (c *client) ProcessMessage(data []byte, returnValue any) error {
	return decode(data, returnValue)
}

// decode unmarshals MessagePack data into the provided pointer.
func decode(data []byte, returnValue any) error {
	if err := msgpack.Unmarshal(data, returnValue); err != nil {
		log.Error("MessagePack unmarshal error", "error", err)
		return err
	}
	return nil
}

// ReadPush parses a push subscription request body and returns the raw
// MessagePack payload.
func ReadPush(body io.Reader) ([]byte, *PushEnvelope, error) {
	var envelope PushEnvelope
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return nil, nil, fmt.Errorf("invalid push envelope: %w", err)
	}
	raw, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid base64 data: %w", err)
	}
	return raw, &envelope, nil
}
