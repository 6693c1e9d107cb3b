package pubsub

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

type event struct {
	ID     int64  `msgpack:"id"`
	Winner string `msgpack:"winner_name"`
}

func TestReadPush(t *testing.T) {
	payload, err := msgpack.Marshal(event{ID: 7, Winner: "Alice"})
	require.NoError(t, err)

	body := `{"subscription":"projects/p/subscriptions/s","message":{"messageId":"1","data":"` +
		base64.StdEncoding.EncodeToString(payload) + `","attributes":{"event":"match-recorded"}}}`

	raw, envelope, err := ReadPush(strings.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, "match-recorded", envelope.Message.Attributes["event"])

	var got event
	require.NoError(t, NewLogOnly().ProcessMessage(raw, &got))
	assert.Equal(t, event{ID: 7, Winner: "Alice"}, got)
}

func TestReadPush_Errors(t *testing.T) {
	_, _, err := ReadPush(strings.NewReader("not json"))
	assert.Error(t, err)

	_, _, err = ReadPush(strings.NewReader(`{"message":{"data":"%%%"}}`))
	assert.Error(t, err)
}

func TestNewMessage(t *testing.T) {
	msg, err := newMessage("match-recorded", event{ID: 3, Winner: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"event": "match-recorded"}, msg.Attributes)

	var got event
	require.NoError(t, decode(msg.Data, &got))
	assert.Equal(t, event{ID: 3, Winner: "Bob"}, got)

	_, err = newMessage("match-recorded", make(chan int))
	assert.Error(t, err)
}
