package prototypeset

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protoparts/internal/core/apperror"
	"protoparts/internal/core/entity"
	"protoparts/internal/domain"
	"protoparts/internal/domain/audit"
	"protoparts/internal/domain/prototype"
	"protoparts/internal/domain/user"
)

type memSets struct {
	rows map[int64]*PrototypeSet
}

func (r *memSets) List(context.Context, domain.ListFilter) (domain.ListResult[View], error) {
	return domain.ListResult[View]{}, nil
}

func (r *memSets) GetView(_ context.Context, id int64) (View, error) {
	s, ok := r.rows[id]
	if !ok {
		return View{}, apperror.NewNotFound("prototype set", id)
	}
	return View{PrototypeSet: *s}, nil
}

func (r *memSets) GetForUpdate(_ context.Context, id int64) (*PrototypeSet, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, apperror.NewNotFound("prototype set", id)
	}
	return s, nil
}

func (r *memSets) SaveAudit(_ context.Context, a *entity.Audit) error {
	r.rows[a.ID].Audit = *a
	return nil
}

func (r *memSets) Create(_ context.Context, s *PrototypeSet) error {
	s.ID = int64(len(r.rows) + 1)
	r.rows[s.ID] = s
	return nil
}

type memPrototypes struct{ created []prototype.Prototype }

func (w *memPrototypes) Create(_ context.Context, p *prototype.Prototype) error {
	w.created = append(w.created, *p)
	return nil
}

type stubIdentifiers struct {
	next  string
	err   error
	calls int
}

func (a *stubIdentifiers) NextSetIdentifier(context.Context, domain.Classification) (string, error) {
	a.calls++
	return a.next, a.err
}

type knownUsers map[int64]bool

func (u knownUsers) GetByID(_ context.Context, id int64) (user.User, error) {
	if !u[id] {
		return user.User{}, apperror.NewNotFound("user", id)
	}
	var usr user.User
	usr.ID = id
	return usr, nil
}

type inlineTx struct{}

func (inlineTx) RunInTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (inlineTx) ReadOnly(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

type memJournal struct{ entries []audit.Entry }

func (j *memJournal) Record(_ context.Context, e audit.Entry) error {
	j.entries = append(j.entries, e)
	return nil
}

var now = time.Date(2021, 1, 1, 10, 0, 0, 0, time.UTC)

type harness struct {
	svc         *Service
	sets        *memSets
	prototypes  *memPrototypes
	identifiers *stubIdentifiers
	journal     *memJournal
}

func newHarness() *harness {
	h := &harness{
		sets:        &memSets{rows: map[int64]*PrototypeSet{}},
		prototypes:  &memPrototypes{},
		identifiers: &stubIdentifiers{next: "0007"},
		journal:     &memJournal{},
	}
	h.svc = NewService(Deps{
		Repo:        h.sets,
		Prototypes:  h.prototypes,
		Identifiers: h.identifiers,
		Users:       knownUsers{3: true, 4: true},
	}, domain.LifecycleServiceConfig[*PrototypeSet]{
		TxManager: inlineTx{},
		Journal:   h.journal,
		Clock:     func() time.Time { return now },
	})
	return h
}

func classification() domain.Classification {
	return domain.Classification{
		OutletCode: "10", OutletTitle: "Plant",
		ProductGroupCode: "30", ProductGroupTitle: "Doors",
		LocationCode: "00", LocationTitle: "Front",
		GateLevelCode: "20", GateLevelTitle: "Gate 2",
		EvidenceYearCode: "21", EvidenceYearTitle: 2021,
		Project: "Atlas",
	}
}

func TestCreate_IndexesPrototypesAcrossGroups(t *testing.T) {
	h := newHarness()

	v, err := h.svc.Create(context.Background(), 9, CreateCommand{
		Classification: classification(),
		Prototypes: []PrototypeGroup{
			{PartTypeCode: "FR", PartTypeTitle: "Front door", Count: 2, OwnerID: 3},
			{PartTypeCode: "RR", PartTypeTitle: "Rear door", Count: 1, OwnerID: 4},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "0007", v.SetIdentifier)
	assert.Equal(t, int64(9), v.CreatedByID)
	assert.Equal(t, now, v.CreatedAt)

	require.Len(t, h.prototypes.created, 3)
	for i, p := range h.prototypes.created {
		assert.Equal(t, i+1, p.Index)
		assert.Equal(t, v.ID, p.PrototypeSetID)
		assert.Equal(t, int64(9), p.CreatedByID)
	}
	assert.Equal(t, "RR", h.prototypes.created[2].PartTypeCode)
	assert.Equal(t, int64(4), h.prototypes.created[2].OwnerID)

	require.Len(t, h.journal.entries, 1)
	assert.Equal(t, audit.ActionCreate, h.journal.entries[0].Action)
	assert.Equal(t, "prototype set", h.journal.entries[0].EntityType)
}

func TestCreate_RejectsMoreThanMaxIndex(t *testing.T) {
	h := newHarness()

	_, err := h.svc.Create(context.Background(), 9, CreateCommand{
		Classification: classification(),
		Prototypes: []PrototypeGroup{
			{PartTypeCode: "FR", PartTypeTitle: "Front door", Count: 999, OwnerID: 3},
			{PartTypeCode: "RR", PartTypeTitle: "Rear door", Count: 1, OwnerID: 3},
		},
	})

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Zero(t, h.identifiers.calls)
	assert.Empty(t, h.sets.rows)
}

func TestCreate_UnknownOwner(t *testing.T) {
	h := newHarness()

	_, err := h.svc.Create(context.Background(), 9, CreateCommand{
		Classification: classification(),
		Prototypes:     []PrototypeGroup{{PartTypeCode: "FR", PartTypeTitle: "Front door", Count: 1, OwnerID: 77}},
	})

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, int64(77), appErr.Details["value"])
	assert.Zero(t, h.identifiers.calls)
}

func TestCreate_IdentifierExhausted(t *testing.T) {
	h := newHarness()
	h.identifiers.err = apperror.NewBusinessRule(apperror.CodeSequenceExhausted, "no set identifiers left")

	_, err := h.svc.Create(context.Background(), 9, CreateCommand{
		Classification: classification(),
		Prototypes:     []PrototypeGroup{{PartTypeCode: "FR", PartTypeTitle: "Front door", Count: 1, OwnerID: 3}},
	})

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeSequenceExhausted, appErr.Code)
	assert.Empty(t, h.prototypes.created)
	assert.Empty(t, h.journal.entries)
}

func TestScrap_KeepsPrototypesUntouched(t *testing.T) {
	h := newHarness()
	v, err := h.svc.Create(context.Background(), 9, CreateCommand{
		Classification: classification(),
		Prototypes:     []PrototypeGroup{{PartTypeCode: "FR", PartTypeTitle: "Front door", Count: 2, OwnerID: 3}},
	})
	require.NoError(t, err)

	require.NoError(t, h.svc.Scrap(context.Background(), 5, v.ID))

	assert.False(t, h.sets.rows[v.ID].IsActive())
	assert.Len(t, h.prototypes.created, 2)
	for _, p := range h.prototypes.created {
		assert.True(t, p.IsActive())
	}
}

func TestCreate_FailingAfterHookKeepsResult(t *testing.T) {
	h := newHarness()
	h.svc.Hooks().On(domain.AfterCreate, func(context.Context, *PrototypeSet) error {
		return errors.New("metrics unavailable")
	})

	v, err := h.svc.Create(context.Background(), 9, CreateCommand{
		Classification: classification(),
		Prototypes:     []PrototypeGroup{{PartTypeCode: "FR", PartTypeTitle: "Front door", Count: 1, OwnerID: 3}},
	})

	require.NoError(t, err)
	assert.Equal(t, "0007", v.SetIdentifier)
	assert.Len(t, h.sets.rows, 1)
}
