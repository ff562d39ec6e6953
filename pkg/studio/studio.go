// Package studio manages the batch asset queue behind the schematic editing
// surface. Assets move idle→processing→{done, error}; the batch runs strictly
// one at a time in insertion order.
package studio

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/seleste/nanosphere/pkg/logger"
)

// Status is the lifecycle state of one queued asset.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusError      Status = "error"
)

// Asset is one queued schematic plus its edit result.
type Asset struct {
	ID       string
	Original []byte
	MIME     string
	Edited   []byte
	EditMIME string
	Status   Status
	Err      string
}

// Editor performs a single asset transformation. Satisfied by the gateway.
type Editor interface {
	EditAsset(ctx context.Context, image []byte, mime, directive string) ([]byte, string, error)
}

// Capture is an optional acquired input device (camera) that must be released
// when the queue is cleared.
type Capture interface {
	Release()
}

// Queue holds the batch. Safe for concurrent use; RunBatch itself processes
// sequentially.
type Queue struct {
	mu      sync.Mutex
	assets  []*Asset
	editor  Editor
	capture Capture
	running bool
}

// NewQueue builds an empty queue over an editor.
func NewQueue(editor Editor) *Queue {
	return &Queue{editor: editor}
}

// AttachCapture registers a capture device to release on Clear.
func (q *Queue) AttachCapture(c Capture) {
	q.mu.Lock()
	q.capture = c
	q.mu.Unlock()
}

// Enqueue adds an asset and returns its generated id.
func (q *Queue) Enqueue(original []byte, mime string) string {
	a := &Asset{
		ID:       uuid.NewString(),
		Original: original,
		MIME:     mime,
		Status:   StatusIdle,
	}
	q.mu.Lock()
	q.assets = append(q.assets, a)
	q.mu.Unlock()
	return a.ID
}

// Assets returns a snapshot of the queue in insertion order.
func (q *Queue) Assets() []Asset {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Asset, len(q.assets))
	for i, a := range q.assets {
		out[i] = *a
	}
	return out
}

// Reset returns a failed or finished asset to idle so the next batch retries
// it. Unknown ids are ignored.
func (q *Queue) Reset(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, a := range q.assets {
		if a.ID == id {
			a.Status = StatusIdle
			a.Edited = nil
			a.EditMIME = ""
			a.Err = ""
			return
		}
	}
}

// Clear empties the queue and releases the capture device if one is attached.
func (q *Queue) Clear() {
	q.mu.Lock()
	c := q.capture
	q.capture = nil
	q.assets = nil
	q.mu.Unlock()
	if c != nil {
		c.Release()
	}
}

// ErrBatchRunning is returned when RunBatch is invoked while a batch is
// already in flight.
var ErrBatchRunning = errors.New("studio: batch already running")

// RunBatch edits every non-done asset in insertion order with the shared
// directive. One asset is in flight at a time; a failure marks that asset and
// the batch continues. Cancellation marks the in-flight asset with
// "cancelled" and stops. onProgress, when set, fires after every status
// change with a snapshot of the touched asset.
func (q *Queue) RunBatch(ctx context.Context, directive string, onProgress func(Asset)) error {
	q.mu.Lock()
	if q.running {
		q.mu.Unlock()
		return ErrBatchRunning
	}
	q.running = true
	ids := make([]string, 0, len(q.assets))
	for _, a := range q.assets {
		if a.Status != StatusDone {
			ids = append(ids, a.ID)
		}
	}
	q.mu.Unlock()

	defer func() {
		q.mu.Lock()
		q.running = false
		q.mu.Unlock()
	}()

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}

		a := q.setStatus(id, StatusProcessing, "", onProgress)
		if a == nil {
			continue
		}

		edited, mime, err := q.editor.EditAsset(ctx, a.Original, a.MIME, directive)
		switch {
		case err != nil && ctx.Err() != nil:
			q.setStatus(id, StatusError, "cancelled", onProgress)
			return ctx.Err()
		case err != nil:
			logger.WarnCF("studio", "asset edit failed", map[string]interface{}{
				"asset": id,
				"error": err.Error(),
			})
			q.setStatus(id, StatusError, err.Error(), onProgress)
		default:
			q.mu.Lock()
			if cur := q.find(id); cur != nil {
				cur.Edited = edited
				cur.EditMIME = mime
			}
			q.mu.Unlock()
			q.setStatus(id, StatusDone, "", onProgress)
		}
	}
	return nil
}

func (q *Queue) find(id string) *Asset {
	for _, a := range q.assets {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (q *Queue) setStatus(id string, s Status, errText string, onProgress func(Asset)) *Asset {
	q.mu.Lock()
	a := q.find(id)
	if a == nil {
		q.mu.Unlock()
		return nil
	}
	a.Status = s
	a.Err = errText
	snapshot := *a
	q.mu.Unlock()
	if onProgress != nil {
		onProgress(snapshot)
	}
	return a
}
