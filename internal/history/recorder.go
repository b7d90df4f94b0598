package history

import (
	"log/slog"
	"sync"
)

const BATCH_SIZE = 10

// Recorder buffers analysis entries and flushes them to the store in
// batches, so a busy server does not pay one transaction per request.
type Recorder struct {
	store      *Store
	buffer     []Entry
	bufferLock sync.Mutex
}

func NewRecorder(store *Store) *Recorder {
	return &Recorder{
		store:  store,
		buffer: make([]Entry, 0, BATCH_SIZE),
	}
}

// Add buffers one entry and flushes when the batch fills.
func (r *Recorder) Add(entry Entry) {
	r.bufferLock.Lock()
	r.buffer = append(r.buffer, entry)
	full := len(r.buffer) >= BATCH_SIZE
	r.bufferLock.Unlock()

	if full {
		r.Flush()
	}
}

// Flush writes any buffered entries to the store.
func (r *Recorder) Flush() {
	r.bufferLock.Lock()
	if len(r.buffer) == 0 {
		r.bufferLock.Unlock()
		return
	}
	batch := r.buffer
	r.buffer = make([]Entry, 0, BATCH_SIZE)
	r.bufferLock.Unlock()

	if _, err := r.store.InsertBatch(batch); err != nil {
		slog.Error("[History] Failed to flush analysis batch",
			slog.Int("batch_size", len(batch)),
			slog.String("error", err.Error()))
	}
}

func (r *Recorder) Size() int {
	r.bufferLock.Lock()
	defer r.bufferLock.Unlock()
	return len(r.buffer)
}

// Close flushes whatever is still buffered.
func (r *Recorder) Close() {
	r.Flush()
}
