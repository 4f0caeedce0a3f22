package console

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contasplay/painel-admin/internal/api"
	"github.com/contasplay/painel-admin/internal/notify"
)

// testRecord and testDraft exercise the generic page without touching any
// real resource.
type testRecord struct {
	ID     int64
	Name   string
	Secret string
}

type testDraft struct {
	Name   string
	Secret string
}

// fakeBackend counts calls and scripts failures for one page under test.
type fakeBackend struct {
	records    []testRecord
	listCalls  int
	listErr    error
	createErr  error
	created    []testDraft
	updateErr  error
	updated    map[int64]testDraft
	deleteErr  error
	deletedIDs []int64
}

func (f *fakeBackend) descriptor() Descriptor[testRecord, testDraft] {
	return Descriptor[testRecord, testDraft]{
		Resource: "test",
		Load: func(ctx context.Context, _ Filter) ([]testRecord, error) {
			f.listCalls++
			if f.listErr != nil {
				return nil, f.listErr
			}
			out := make([]testRecord, len(f.records))
			copy(out, f.records)
			return out, nil
		},
		Create: func(ctx context.Context, d testDraft) error {
			if f.createErr != nil {
				return f.createErr
			}
			f.created = append(f.created, d)
			f.records = append(f.records, testRecord{ID: int64(len(f.records) + 1), Name: d.Name, Secret: d.Secret})
			return nil
		},
		Update: func(ctx context.Context, id int64, d testDraft) error {
			if f.updateErr != nil {
				return f.updateErr
			}
			if f.updated == nil {
				f.updated = make(map[int64]testDraft)
			}
			f.updated[id] = d
			return nil
		},
		Delete: func(ctx context.Context, id int64) error {
			if f.deleteErr != nil {
				return f.deleteErr
			}
			f.deletedIDs = append(f.deletedIDs, id)
			return nil
		},
		ID:    func(r testRecord) int64 { return r.ID },
		Label: func(r testRecord) string { return r.Name },
		Match: func(r testRecord, fl Filter) bool {
			return matchQuery(fl.Query, r.Name)
		},
		Defaults: func() testDraft { return testDraft{} },
		DraftFrom: func(r testRecord) testDraft {
			// Secret deliberately left blank: edit-without-reveal.
			return testDraft{Name: r.Name}
		},
		Validate: func(_ FormMode, d testDraft) error {
			if d.Name == "" {
				return errors.New("informe o nome")
			}
			return nil
		},
	}
}

func newTestPage(f *fakeBackend) (*Page[testRecord, testDraft], *notify.Center) {
	nc := notify.NewCenter(notify.WithTTL(time.Hour))
	return NewPage(f.descriptor(), nc, nil), nc
}

func TestPageReload(t *testing.T) {
	f := &fakeBackend{records: []testRecord{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}}
	p, _ := newTestPage(f)

	p.Reload(context.Background())
	st := p.State()
	require.Len(t, st.Records, 2)
	assert.False(t, st.Loading)
	assert.Empty(t, st.LoadError)
}

func TestPageReloadIdempotent(t *testing.T) {
	f := &fakeBackend{records: []testRecord{{ID: 1, Name: "a"}}}
	p, _ := newTestPage(f)

	p.Reload(context.Background())
	first := p.State().Records
	p.Reload(context.Background())
	second := p.State().Records

	assert.Equal(t, first, second)
	assert.Equal(t, 2, f.listCalls)
}

func TestPageReloadFailureKeepsStaleRecords(t *testing.T) {
	f := &fakeBackend{records: []testRecord{{ID: 1, Name: "a"}}}
	p, _ := newTestPage(f)

	p.Reload(context.Background())
	require.Len(t, p.State().Records, 1)

	f.listErr = errors.New("boom")
	p.Reload(context.Background())

	st := p.State()
	assert.Len(t, st.Records, 1, "previous records must stay visible")
	assert.Equal(t, MsgLoadFailed, st.LoadError)
	assert.False(t, st.Loading)
}

func TestPageClientSideFilter(t *testing.T) {
	f := &fakeBackend{records: []testRecord{{ID: 1, Name: "Netflix"}, {ID: 2, Name: "Spotify"}}}
	p, _ := newTestPage(f)
	p.Reload(context.Background())

	p.SetFilter(Filter{Query: "net"})
	filtered := p.Filtered()
	require.Len(t, filtered, 1)
	assert.Equal(t, "Netflix", filtered[0].Name)

	// The cache itself is untouched.
	assert.Len(t, p.State().Records, 2)
}

func TestPageSubmitCreate(t *testing.T) {
	f := &fakeBackend{}
	p, nc := newTestPage(f)
	p.Reload(context.Background())

	require.NoError(t, p.OpenCreate())
	p.SetDraft(testDraft{Name: "novo"})
	require.NoError(t, p.Submit(context.Background()))

	st := p.State()
	assert.Equal(t, "closed", st.FormMode)
	require.Len(t, f.created, 1)
	assert.Equal(t, 2, f.listCalls, "successful submit must reload the list")
	require.Len(t, st.Records, 1, "reloaded list carries the created record")

	toasts := nc.Active()
	require.NotEmpty(t, toasts)
	assert.Equal(t, notify.VariantSuccess, toasts[len(toasts)-1].Variant)
}

func TestPageSubmitValidationFailure(t *testing.T) {
	f := &fakeBackend{}
	p, nc := newTestPage(f)

	require.NoError(t, p.OpenCreate())
	p.SetDraft(testDraft{Name: ""})
	err := p.Submit(context.Background())
	require.Error(t, err)

	assert.Empty(t, f.created, "validation failure must not reach the network")
	assert.Equal(t, "create", p.State().FormMode, "form stays open")

	toasts := nc.Active()
	require.Len(t, toasts, 1)
	assert.Equal(t, notify.VariantWarning, toasts[0].Variant)
}

func TestPageSubmitServerFailureKeepsDraft(t *testing.T) {
	f := &fakeBackend{createErr: &api.Error{Status: 422, Detail: "nome já em uso"}}
	p, nc := newTestPage(f)

	require.NoError(t, p.OpenCreate())
	p.SetDraft(testDraft{Name: "dup"})
	err := p.Submit(context.Background())
	require.Error(t, err)

	st := p.State()
	assert.Equal(t, "create", st.FormMode, "form stays open for correction")
	assert.Equal(t, "dup", st.Draft.Name, "draft is preserved")

	toasts := nc.Active()
	require.Len(t, toasts, 1)
	assert.Equal(t, notify.VariantError, toasts[0].Variant)
	assert.Equal(t, "nome já em uso", toasts[0].Message, "backend detail is surfaced")
}

func TestPageOpenEditBlanksSecret(t *testing.T) {
	f := &fakeBackend{records: []testRecord{{ID: 7, Name: "conta", Secret: "s3cr3t"}}}
	p, _ := newTestPage(f)
	p.Reload(context.Background())

	require.NoError(t, p.OpenEdit(7))
	st := p.State()
	assert.Equal(t, "edit", st.FormMode)
	assert.Equal(t, int64(7), st.EditingID)
	assert.Equal(t, "conta", st.Draft.Name)
	assert.Empty(t, st.Draft.Secret, "secret field starts blank on edit")
}

func TestPageOpenEditUnknownID(t *testing.T) {
	f := &fakeBackend{}
	p, _ := newTestPage(f)
	p.Reload(context.Background())

	assert.ErrorIs(t, p.OpenEdit(99), ErrNotFound)
}

func TestPageDeleteConfirm(t *testing.T) {
	f := &fakeBackend{records: []testRecord{{ID: 42, Name: "alvo"}}}
	p, nc := newTestPage(f)
	p.Reload(context.Background())

	require.NoError(t, p.RequestDelete(42))
	target := p.DeleteTarget()
	require.NotNil(t, target)
	assert.Equal(t, "alvo", target.Name, "confirmation names the selected record")

	require.NoError(t, p.ConfirmDelete(context.Background()))
	assert.Equal(t, []int64{42}, f.deletedIDs, "exactly one delete call")
	assert.Nil(t, p.DeleteTarget())
	assert.Equal(t, 2, f.listCalls, "confirm reloads the list")

	toasts := nc.Active()
	require.NotEmpty(t, toasts)
	last := toasts[len(toasts)-1]
	assert.Equal(t, notify.VariantSuccess, last.Variant)
	assert.Equal(t, `registro "alvo" excluído com sucesso`, last.Message,
		"the toast names the deleted record")
}

func TestPageDeleteCancel(t *testing.T) {
	f := &fakeBackend{records: []testRecord{{ID: 42, Name: "alvo"}}}
	p, _ := newTestPage(f)
	p.Reload(context.Background())

	require.NoError(t, p.RequestDelete(42))
	p.CancelDelete()

	assert.Empty(t, f.deletedIDs, "cancel issues zero network calls")
	assert.Nil(t, p.DeleteTarget())
	assert.Equal(t, 1, f.listCalls)
}

func TestPageBusyGuards(t *testing.T) {
	f := &fakeBackend{records: []testRecord{{ID: 1, Name: "a"}}}
	p, _ := newTestPage(f)
	p.Reload(context.Background())

	require.NoError(t, p.OpenCreate())
	p.SetDraft(testDraft{Name: "x"})
	p.submitting = true
	assert.ErrorIs(t, p.Submit(context.Background()), ErrBusy)
	p.submitting = false

	require.NoError(t, p.RequestDelete(1))
	p.deleting = true
	assert.ErrorIs(t, p.ConfirmDelete(context.Background()), ErrBusy)
}

func TestPageReadOnly(t *testing.T) {
	f := &fakeBackend{}
	desc := f.descriptor()
	desc.Create = nil
	desc.Update = nil
	desc.Delete = nil
	p := NewPage(desc, notify.NewCenter(), nil)

	assert.ErrorIs(t, p.OpenCreate(), ErrReadOnly)
	assert.ErrorIs(t, p.OpenEdit(1), ErrReadOnly)
	assert.ErrorIs(t, p.RequestDelete(1), ErrReadOnly)
}
