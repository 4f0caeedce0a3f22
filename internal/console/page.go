// Package console implements the management pages of the admin console:
// one generic CRUD state machine instantiated per backend resource, plus
// the pure display-band helpers the pages share. Every page owns a cached
// record list, a client-side filter, a create/edit form, a delete
// confirmation and, for some resources, a detail pane. The cache is never
// patched locally: every successful mutation reloads server truth.
package console

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/contasplay/painel-admin/internal/api"
	"github.com/contasplay/painel-admin/internal/notify"
)

// Fixed user-facing strings. Load failures get a page banner, not a toast,
// and never echo transport internals.
const (
	MsgLoadFailed = "não foi possível carregar os dados"
	MsgUnexpected = "ocorreu um erro inesperado"
	MsgSaved      = "registro salvo com sucesso"
	MsgDeleted    = "registro excluído com sucesso"
)

// ErrBusy is returned when a mutating action is invoked while its own
// previous request is still in flight.
var ErrBusy = errors.New("operation already in progress")

// ErrReadOnly is returned when a mutating action is invoked on a resource
// with no such endpoint.
var ErrReadOnly = errors.New("resource is read-only")

// ErrNotFound is returned when an action names a record absent from the
// cached list.
var ErrNotFound = errors.New("record not found")

// FormMode is the state of a page's create/edit form.
type FormMode int

const (
	FormClosed FormMode = iota
	FormCreate
	FormEdit
)

// String implements fmt.Stringer.
func (m FormMode) String() string {
	switch m {
	case FormCreate:
		return "create"
	case FormEdit:
		return "edit"
	}
	return "closed"
}

// Filter is the per-page, client-only predicate over the cached list.
// Pages whose list endpoint accepts a filter natively also pass it to
// Load; everyone else filters locally and sends nothing.
type Filter struct {
	// Query is matched as a case-insensitive substring over the
	// resource's denormalized display fields.
	Query string `json:"query"`
	// Status is a categorical match; empty means all.
	Status string `json:"status"`
}

// Descriptor declares how one resource plugs into the generic page: its
// endpoints, identity, display label, filter predicate and form rules.
// Create, Update and Delete may be nil for read-only resources.
type Descriptor[T, D any] struct {
	// Resource names the page, e.g. "produtos".
	Resource string

	// Load fetches the record list. The filter is passed for the
	// resources whose list endpoint accepts it; others ignore it.
	Load func(ctx context.Context, f Filter) ([]T, error)
	// Create posts a new record built from the draft.
	Create func(ctx context.Context, draft D) error
	// Update puts the draft's editable fields onto an existing record.
	Update func(ctx context.Context, id int64, draft D) error
	// Delete removes a record by id.
	Delete func(ctx context.Context, id int64) error

	// ID extracts a record's identifier.
	ID func(T) int64
	// Label names a record in confirmations and notifications.
	Label func(T) string
	// Match is the client-side filter predicate.
	Match func(T, Filter) bool

	// Defaults returns a fresh draft for the create form.
	Defaults func() D
	// DraftFrom copies a record's editable fields into a draft. Secret
	// fields are left blank: blank means "leave unchanged" on submit.
	DraftFrom func(T) D
	// Validate checks a draft before any network call.
	Validate func(mode FormMode, draft D) error
}

// Page is the generic CRUD state machine. All state is guarded by one
// mutex and every network call happens with the mutex released, so a
// response arriving after the operator moved on mutates state safely
// instead of faulting.
type Page[T, D any] struct {
	desc   Descriptor[T, D]
	notify *notify.Center
	log    *zap.Logger

	mu           sync.Mutex
	records      []T
	loading      bool
	loadErr      string
	filter       Filter
	mode         FormMode
	draft        D
	editingID    int64
	deleteTarget *T
	submitting   bool
	deleting     bool
}

// PageState is a consistent snapshot of a page for rendering.
type PageState[T, D any] struct {
	Resource     string   `json:"resource"`
	Records      []T      `json:"records"`
	Filtered     []T      `json:"filtered"`
	Loading      bool     `json:"loading"`
	LoadError    string   `json:"load_error,omitempty"`
	Filter       Filter   `json:"filter"`
	FormMode     string   `json:"form_mode"`
	Draft        D        `json:"draft"`
	EditingID    int64    `json:"editing_id,omitempty"`
	DeleteTarget *T       `json:"delete_target,omitempty"`
	Submitting   bool     `json:"submitting"`
	Deleting     bool     `json:"deleting"`
}

// NewPage constructs a page over the given descriptor.
func NewPage[T, D any](desc Descriptor[T, D], nc *notify.Center, log *zap.Logger) *Page[T, D] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Page[T, D]{desc: desc, notify: nc, log: log}
}

// Resource returns the page's resource name.
func (p *Page[T, D]) Resource() string { return p.desc.Resource }

// Reload fetches the record list from the server. On failure the previous
// records stay visible and the page-level error banner is set; the load
// error is never a toast. The loading flag is cleared on every path.
func (p *Page[T, D]) Reload(ctx context.Context) {
	p.mu.Lock()
	p.loading = true
	f := p.filter
	p.mu.Unlock()

	records, err := p.desc.Load(ctx, f)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	if err != nil {
		p.loadErr = MsgLoadFailed
		p.log.Warn("list load failed",
			zap.String("resource", p.desc.Resource),
			zap.Error(err),
		)
		return
	}
	p.records = records
	p.loadErr = ""
}

// SetFilter replaces the filter. Pages with a server-side filter should be
// reloaded afterwards; for the rest the change is purely local.
func (p *Page[T, D]) SetFilter(f Filter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.filter = f
}

// Filter returns the current filter.
func (p *Page[T, D]) Filter() Filter {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter
}

// filtered applies the client-side predicate. Caller holds the mutex.
func (p *Page[T, D]) filtered() []T {
	if p.desc.Match == nil {
		out := make([]T, len(p.records))
		copy(out, p.records)
		return out
	}
	out := make([]T, 0, len(p.records))
	for _, r := range p.records {
		if p.desc.Match(r, p.filter) {
			out = append(out, r)
		}
	}
	return out
}

// Filtered returns the cached records that pass the current filter.
func (p *Page[T, D]) Filtered() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filtered()
}

// OpenCreate opens the form in create mode with a fresh default draft.
func (p *Page[T, D]) OpenCreate() error {
	if p.desc.Create == nil {
		return ErrReadOnly
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = FormCreate
	p.editingID = 0
	p.draft = p.desc.Defaults()
	return nil
}

// OpenEdit opens the form in edit mode, populating the draft from the
// cached record's editable fields.
func (p *Page[T, D]) OpenEdit(id int64) error {
	if p.desc.Update == nil {
		return ErrReadOnly
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	rec, ok := p.find(id)
	if !ok {
		return ErrNotFound
	}
	p.mode = FormEdit
	p.editingID = id
	p.draft = p.desc.DraftFrom(rec)
	return nil
}

// CloseForm discards the draft and closes the form.
func (p *Page[T, D]) CloseForm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = FormClosed
	p.editingID = 0
	var zero D
	p.draft = zero
}

// SetDraft replaces the uncommitted form values.
func (p *Page[T, D]) SetDraft(draft D) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draft = draft
}

// Draft returns the current form values.
func (p *Page[T, D]) Draft() D {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.draft
}

// Submit validates the draft and calls the create or update endpoint.
// Validation failures raise a warning toast and skip the network entirely.
// On success the form closes, the list reloads and a success toast fires;
// on failure the form stays open with the draft intact and an error toast
// carries the backend's detail when present.
func (p *Page[T, D]) Submit(ctx context.Context) error {
	p.mu.Lock()
	if p.submitting {
		p.mu.Unlock()
		return ErrBusy
	}
	mode := p.mode
	draft := p.draft
	id := p.editingID
	if mode == FormClosed {
		p.mu.Unlock()
		return fmt.Errorf("submit with closed form")
	}
	if p.desc.Validate != nil {
		if err := p.desc.Validate(mode, draft); err != nil {
			p.mu.Unlock()
			p.notify.Warning(err.Error())
			return err
		}
	}
	p.submitting = true
	p.mu.Unlock()

	var err error
	if mode == FormCreate {
		err = p.desc.Create(ctx, draft)
	} else {
		err = p.desc.Update(ctx, id, draft)
	}

	p.mu.Lock()
	p.submitting = false
	if err != nil {
		p.mu.Unlock()
		p.notify.Error(api.ErrorText(err, MsgUnexpected))
		p.log.Warn("submit failed",
			zap.String("resource", p.desc.Resource),
			zap.String("mode", mode.String()),
			zap.Error(err),
		)
		return err
	}
	p.mode = FormClosed
	p.editingID = 0
	var zero D
	p.draft = zero
	p.mu.Unlock()

	p.notify.Success(MsgSaved)
	p.Reload(ctx)
	return nil
}

// RequestDelete selects a record for deletion, opening the confirmation.
// No network call happens until ConfirmDelete.
func (p *Page[T, D]) RequestDelete(id int64) error {
	if p.desc.Delete == nil {
		return ErrReadOnly
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	rec, ok := p.find(id)
	if !ok {
		return ErrNotFound
	}
	p.deleteTarget = &rec
	return nil
}

// CancelDelete clears the confirmation without any server call.
func (p *Page[T, D]) CancelDelete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deleteTarget = nil
}

// ConfirmDelete calls the delete endpoint for the selected record exactly
// once, then clears the target and reloads the list. The record is never
// removed locally first.
func (p *Page[T, D]) ConfirmDelete(ctx context.Context) error {
	p.mu.Lock()
	if p.deleting {
		p.mu.Unlock()
		return ErrBusy
	}
	if p.deleteTarget == nil {
		p.mu.Unlock()
		return ErrNotFound
	}
	target := *p.deleteTarget
	p.deleting = true
	p.mu.Unlock()

	err := p.desc.Delete(ctx, p.desc.ID(target))

	p.mu.Lock()
	p.deleting = false
	p.deleteTarget = nil
	p.mu.Unlock()

	if err != nil {
		p.notify.Error(api.ErrorText(err, MsgUnexpected))
		p.log.Warn("delete failed",
			zap.String("resource", p.desc.Resource),
			zap.Int64("id", p.desc.ID(target)),
			zap.Error(err),
		)
		return err
	}

	msg := MsgDeleted
	if p.desc.Label != nil {
		msg = fmt.Sprintf("registro %q excluído com sucesso", p.desc.Label(target))
	}
	p.notify.Success(msg)
	p.Reload(ctx)
	return nil
}

// DeleteTarget returns the record currently selected for deletion, nil
// when the confirmation is closed.
func (p *Page[T, D]) DeleteTarget() *T {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.deleteTarget == nil {
		return nil
	}
	rec := *p.deleteTarget
	return &rec
}

// State returns a consistent snapshot for rendering.
func (p *Page[T, D]) State() PageState[T, D] {
	p.mu.Lock()
	defer p.mu.Unlock()

	records := make([]T, len(p.records))
	copy(records, p.records)

	st := PageState[T, D]{
		Resource:   p.desc.Resource,
		Records:    records,
		Filtered:   p.filtered(),
		Loading:    p.loading,
		LoadError:  p.loadErr,
		Filter:     p.filter,
		FormMode:   p.mode.String(),
		Draft:      p.draft,
		EditingID:  p.editingID,
		Submitting: p.submitting,
		Deleting:   p.deleting,
	}
	if p.deleteTarget != nil {
		rec := *p.deleteTarget
		st.DeleteTarget = &rec
	}
	return st
}

// find locates a cached record by id. Caller holds the mutex.
func (p *Page[T, D]) find(id int64) (T, bool) {
	for _, r := range p.records {
		if p.desc.ID(r) == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}
