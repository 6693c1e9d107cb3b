package pubsub

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

type logClient struct{}

// NewLogOnly returns a client that encodes and logs messages instead of
// publishing them. It is used when no GCP project is configured.
func NewLogOnly() PubSubClient {
	return logClient{}
}

func (logClient) SendMessage(_ context.Context, topic string, data any) error {
	payload, err := msgpack.Marshal(data)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}
	log.Info("Pub/Sub disabled, dropping message", "topic", topic, "bytes", len(payload))
	return nil
}

func (logClient) ProcessMessage(data []byte, returnValue any) error {
	return decode(data, returnValue)
}
