package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client *pubsub.Client
}

// eventAttribute carries the topic name on every published message so push
// handlers can tell events apart without decoding the payload.
const eventAttribute = "event"

// PushEnvelope is the body of a Pub/Sub push subscription request.
type PushEnvelope struct {
	Subscription string `json:"subscription"`
	Message      struct {
		ID         string            `json:"messageId"`
		Data       string            `json:"data"` // base64-encoded MessagePack payload
		Attributes map[string]string `json:"attributes"`
	} `json:"message"`
}
