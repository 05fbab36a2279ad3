package realtime

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, time.Second, 5*time.Millisecond)
}

func TestHub_PublishTournament(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)

	room := RoomForTournament(4)
	client := NewClient(hub, nil, room)
	other := NewClient(hub, nil, RoomForTournament(5))
	require.True(t, hub.Subscribe(client))
	require.True(t, hub.Subscribe(other))
	waitFor(t, func() bool { return hub.ClientCount(room) == 1 })

	hub.PublishTournament(4, EventMatchUpdated, map[string]int{"match_id": 9})

	select {
	case raw := <-client.Send:
		var msg struct {
			Type    string         `json:"type"`
			Payload map[string]int `json:"payload"`
			RoomID  string         `json:"room_id"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, EventMatchUpdated, msg.Type)
		assert.Equal(t, 9, msg.Payload["match_id"])
		assert.Equal(t, "tournament_4", msg.RoomID)
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}

	assert.Len(t, other.Send, 0, "other rooms receive nothing")
}

func TestHub_UnsubscribeAndStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	go hub.Run(ctx)

	room := RoomForTournament(1)
	a := NewClient(hub, nil, room)
	b := NewClient(hub, nil, room)
	require.True(t, hub.Subscribe(a))
	require.True(t, hub.Subscribe(b))
	waitFor(t, func() bool { return hub.ClientCount(room) == 2 })

	hub.unsubscribe(a)
	waitFor(t, func() bool { return hub.ClientCount(room) == 1 })
	_, open := <-a.Send
	assert.False(t, open)

	cancel()
	waitFor(t, func() bool { return hub.ClientCount(room) == 0 })
	_, open = <-b.Send
	assert.False(t, open)

	assert.False(t, hub.Subscribe(NewClient(hub, nil, room)))
	hub.PublishTournament(1, EventMatchUpdated, nil)
}
