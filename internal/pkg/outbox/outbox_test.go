package outbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (e sampleEvent) EventType() string   { return "sample.created" }
func (e sampleEvent) AggregateID() string { return e.ID }

type badEvent struct {
	Ch chan int
}

func (badEvent) EventType() string   { return "bad" }
func (badEvent) AggregateID() string { return "x" }

func TestWriter_InsertMuts(t *testing.T) {
	w := NewWriter()

	t.Run("one mutation per event", func(t *testing.T) {
		muts, err := w.InsertMuts([]Event{
			sampleEvent{ID: "a", Title: "one"},
			sampleEvent{ID: "b", Title: "two"},
		})
		require.NoError(t, err)
		assert.Len(t, muts, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		muts, err := w.InsertMuts(nil)
		require.NoError(t, err)
		assert.Empty(t, muts)
	})

	t.Run("unserializable event", func(t *testing.T) {
		_, err := w.InsertMut(badEvent{Ch: make(chan int)})
		assert.Error(t, err)
	})
}
