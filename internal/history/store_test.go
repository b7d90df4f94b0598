package history

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleEntry(text string, at time.Time) Entry {
	return Entry{
		Timestamp:    at,
		Text:         text,
		Label:        "male",
		Confidence:   87.5,
		Sentiment:    "Very Positive",
		Polarity:     0.64,
		Subjectivity: 0.4,
		Mood:         "Happy/Positive",
	}
}

func TestStore_InsertAndRecent(t *testing.T) {
	store := tempStore(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Insert(sampleEntry("first", base)))
	require.NoError(t, store.Insert(sampleEntry("second", base.Add(time.Minute))))
	require.NoError(t, store.Insert(sampleEntry("third", base.Add(2*time.Minute))))

	entries, err := store.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "third", entries[0].Text)
	assert.Equal(t, "second", entries[1].Text)
	assert.Equal(t, 87.5, entries[0].Confidence)
}

func TestStore_InsertBatch(t *testing.T) {
	store := tempStore(t)
	base := time.Now().UTC()

	batch := []Entry{
		sampleEntry("a", base),
		sampleEntry("b", base.Add(time.Second)),
		sampleEntry("c", base.Add(2*time.Second)),
	}
	inserted, err := store.InsertBatch(batch)
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	entries, err := store.Recent(10)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestStore_Export(t *testing.T) {
	store := tempStore(t)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Insert(sampleEntry("hello world", at)))

	var sb strings.Builder
	require.NoError(t, store.Export(&sb))

	out := sb.String()
	assert.Contains(t, out, "[2025-06-01 12:00:00]")
	assert.Contains(t, out, "Text: hello world")
	assert.Contains(t, out, "Gender: Male (87.50%)")
	assert.Contains(t, out, "Sentiment: Very Positive (Polarity: 0.64)")
	assert.Contains(t, out, "Mood: Happy/Positive")
}

func TestRecorder_FlushesWhenFull(t *testing.T) {
	store := tempStore(t)
	recorder := NewRecorder(store)

	base := time.Now().UTC()
	for i := 0; i < BATCH_SIZE; i++ {
		recorder.Add(sampleEntry("buffered", base.Add(time.Duration(i)*time.Second)))
	}

	// The full batch flushed automatically.
	assert.Equal(t, 0, recorder.Size())
	entries, err := store.Recent(BATCH_SIZE * 2)
	require.NoError(t, err)
	assert.Len(t, entries, BATCH_SIZE)
}

func TestRecorder_CloseFlushesRemainder(t *testing.T) {
	store := tempStore(t)
	recorder := NewRecorder(store)

	recorder.Add(sampleEntry("pending", time.Now().UTC()))
	require.Equal(t, 1, recorder.Size())

	recorder.Close()
	assert.Equal(t, 0, recorder.Size())

	entries, err := store.Recent(10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
