package console

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/contasplay/painel-admin/internal/api"
	"github.com/contasplay/painel-admin/internal/notify"
)

// DetailPane is the read-detail modal used by tickets, orders and parent
// accounts: a richer payload fetched by id, with nested actions that each
// guard against double submission independently of the list-level loading
// flag.
type DetailPane[D any] struct {
	fetch  func(ctx context.Context, id int64) (D, error)
	notify *notify.Center
	log    *zap.Logger

	mu      sync.Mutex
	id      int64
	record  *D
	loading bool
	busy    map[string]bool
}

// DetailState is a consistent snapshot of a pane for rendering.
type DetailState[D any] struct {
	ID      int64           `json:"id,omitempty"`
	Record  *D              `json:"record,omitempty"`
	Loading bool            `json:"loading"`
	Busy    map[string]bool `json:"busy,omitempty"`
}

// NewDetailPane constructs a pane over the given detail fetch.
func NewDetailPane[D any](fetch func(ctx context.Context, id int64) (D, error), nc *notify.Center, log *zap.Logger) *DetailPane[D] {
	if log == nil {
		log = zap.NewNop()
	}
	return &DetailPane[D]{
		fetch:  fetch,
		notify: nc,
		log:    log,
		busy:   make(map[string]bool),
	}
}

// Open fetches the detail payload for id and shows the pane. A failure
// raises an error toast and leaves the pane closed.
func (d *DetailPane[D]) Open(ctx context.Context, id int64) error {
	d.mu.Lock()
	d.id = id
	d.record = nil
	d.loading = true
	d.mu.Unlock()

	rec, err := d.fetch(ctx, id)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.loading = false
	if err != nil {
		d.id = 0
		d.notify.Error(api.ErrorText(err, MsgLoadFailed))
		d.log.Warn("detail load failed", zap.Int64("id", id), zap.Error(err))
		return err
	}
	if d.id != id {
		// The operator opened another record while this fetch was in
		// flight; drop the late result.
		return nil
	}
	d.record = &rec
	return nil
}

// Reload refetches the currently open record, keeping the stale payload
// visible if the refetch fails.
func (d *DetailPane[D]) Reload(ctx context.Context) {
	d.mu.Lock()
	id := d.id
	d.mu.Unlock()
	if id == 0 {
		return
	}

	rec, err := d.fetch(ctx, id)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.log.Warn("detail reload failed", zap.Int64("id", id), zap.Error(err))
		return
	}
	if d.id != id {
		return
	}
	d.record = &rec
}

// Close hides the pane and discards its payload.
func (d *DetailPane[D]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.id = 0
	d.record = nil
	d.loading = false
}

// Record returns the open payload, nil when the pane is closed or loading.
func (d *DetailPane[D]) Record() *D {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.record
}

// ID returns the id of the open record, zero when closed.
func (d *DetailPane[D]) ID() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.id
}

// Run executes a nested action against the open record: call, reload the
// detail payload, notify, then run any follow-ups (typically the owning
// page's list reload). Each action name holds its own in-flight guard, so
// a double click submits once while unrelated actions stay available.
func (d *DetailPane[D]) Run(ctx context.Context, action, successMsg string, fn func(ctx context.Context) error, after ...func(ctx context.Context)) error {
	d.mu.Lock()
	if d.id == 0 {
		d.mu.Unlock()
		return ErrNotFound
	}
	if d.busy[action] {
		d.mu.Unlock()
		return ErrBusy
	}
	d.busy[action] = true
	d.mu.Unlock()

	err := fn(ctx)

	d.mu.Lock()
	delete(d.busy, action)
	d.mu.Unlock()

	if err != nil {
		d.notify.Error(api.ErrorText(err, MsgUnexpected))
		d.log.Warn("detail action failed", zap.String("action", action), zap.Error(err))
		return err
	}

	if successMsg != "" {
		d.notify.Success(successMsg)
	}
	d.Reload(ctx)
	for _, f := range after {
		f(ctx)
	}
	return nil
}

// State returns a consistent snapshot for rendering.
func (d *DetailPane[D]) State() DetailState[D] {
	d.mu.Lock()
	defer d.mu.Unlock()

	st := DetailState[D]{ID: d.id, Loading: d.loading}
	if d.record != nil {
		rec := *d.record
		st.Record = &rec
	}
	if len(d.busy) > 0 {
		st.Busy = make(map[string]bool, len(d.busy))
		for k, v := range d.busy {
			st.Busy[k] = v
		}
	}
	return st
}
