package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protoparts/internal/core/apperror"
	"protoparts/internal/core/entity"
	"protoparts/internal/domain/audit"
)

type part struct {
	entity.Audit
	Name string
}

type fakeRepo struct {
	rows  map[int64]*part
	saves int
}

func (r *fakeRepo) GetForUpdate(_ context.Context, id int64) (*part, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, apperror.NewNotFound("row", id)
	}
	cp := *p
	return &cp, nil
}

func (r *fakeRepo) SaveAudit(_ context.Context, a *entity.Audit) error {
	r.saves++
	r.rows[a.ID].Audit = *a
	return nil
}

type fakeTx struct{ calls int }

func (t *fakeTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

func (t *fakeTx) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memJournal struct{ entries []audit.Entry }

func (j *memJournal) Record(_ context.Context, e audit.Entry) error {
	j.entries = append(j.entries, e)
	return nil
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestService(rows ...*part) (*LifecycleService[*part], *fakeRepo, *memJournal) {
	repo := &fakeRepo{rows: map[int64]*part{}}
	for _, p := range rows {
		repo.rows[p.ID] = p
	}
	journal := &memJournal{}
	svc := NewLifecycleService(LifecycleServiceConfig[*part]{
		Repo:       repo,
		TxManager:  &fakeTx{},
		Journal:    journal,
		EntityName: "part",
		Clock:      func() time.Time { return fixedNow },
	})
	return svc, repo, journal
}

func activePart(id int64) *part {
	p := &part{Name: "p"}
	p.ID = id
	p.Stamp(1, fixedNow.Add(-time.Hour))
	return p
}

func TestScrap_IsIdempotent(t *testing.T) {
	svc, repo, journal := newTestService(activePart(7))
	ctx := context.Background()

	require.NoError(t, svc.Scrap(ctx, 42, 7))

	row := repo.rows[7]
	require.NotNil(t, row.DeletedAt)
	require.NotNil(t, row.DeletedByID)
	assert.Equal(t, fixedNow, *row.DeletedAt)
	assert.Equal(t, int64(42), *row.DeletedByID)
	assert.Equal(t, int64(42), row.ModifiedByID)
	assert.Equal(t, int64(1), row.CreatedByID)

	require.NoError(t, svc.Scrap(ctx, 99, 7))

	assert.Equal(t, fixedNow, *repo.rows[7].DeletedAt)
	assert.Equal(t, int64(42), *repo.rows[7].DeletedByID)
	assert.Equal(t, int64(42), repo.rows[7].ModifiedByID)
	assert.Equal(t, 1, repo.saves)
	require.Len(t, journal.entries, 1)
	assert.Equal(t, audit.ActionScrap, journal.entries[0].Action)
	assert.Equal(t, int64(42), journal.entries[0].UserID)
}

func TestReactivate_IsIdempotent(t *testing.T) {
	p := activePart(3)
	p.Scrap(5, fixedNow.Add(-time.Minute))
	svc, repo, journal := newTestService(p)
	ctx := context.Background()

	require.NoError(t, svc.Reactivate(ctx, 8, 3))

	assert.Nil(t, repo.rows[3].DeletedAt)
	assert.Nil(t, repo.rows[3].DeletedByID)
	assert.Equal(t, int64(8), repo.rows[3].ModifiedByID)

	require.NoError(t, svc.Reactivate(ctx, 9, 3))

	assert.Equal(t, int64(8), repo.rows[3].ModifiedByID)
	assert.Equal(t, 1, repo.saves)
	require.Len(t, journal.entries, 1)
	assert.Equal(t, audit.ActionReactivate, journal.entries[0].Action)
}

func TestReactivate_ActiveIsNoOp(t *testing.T) {
	svc, repo, journal := newTestService(activePart(1))

	require.NoError(t, svc.Reactivate(context.Background(), 2, 1))

	assert.Equal(t, 0, repo.saves)
	assert.Empty(t, journal.entries)
	assert.Equal(t, int64(1), repo.rows[1].ModifiedByID)
}

func TestScrap_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.Scrap(context.Background(), 1, 404)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	assert.Equal(t, "part not found", appErr.Message)
	assert.Equal(t, int64(404), appErr.Details["id"])
}

func TestScrap_RunsHooksOnlyOnChange(t *testing.T) {
	svc, _, _ := newTestService(activePart(1))
	var after int
	svc.Hooks().On(AfterScrap, func(context.Context, *part) error {
		after++
		return nil
	})

	require.NoError(t, svc.Scrap(context.Background(), 2, 1))
	require.NoError(t, svc.Scrap(context.Background(), 2, 1))

	assert.Equal(t, 1, after)
}

func TestScrap_BeforeHookAborts(t *testing.T) {
	svc, repo, _ := newTestService(activePart(1))
	svc.Hooks().On(BeforeScrap, func(context.Context, *part) error {
		return errors.New("blocked")
	})

	err := svc.Scrap(context.Background(), 2, 1)

	assert.EqualError(t, err, "blocked")
	assert.Equal(t, 0, repo.saves)
	assert.True(t, repo.rows[1].IsActive())
}

func TestListResult_TotalPages(t *testing.T) {
	assert.Equal(t, 0, ListResult[int]{TotalCount: 0, PageSize: 10}.TotalPages())
	assert.Equal(t, 1, ListResult[int]{TotalCount: 10, PageSize: 10}.TotalPages())
	assert.Equal(t, 3, ListResult[int]{TotalCount: 21, PageSize: 10}.TotalPages())
	assert.Equal(t, 0, ListResult[int]{TotalCount: 5}.TotalPages())
}

func TestScrap_FailingAfterHookDoesNotFailCommand(t *testing.T) {
	svc, repo, journal := newTestService(activePart(1))
	svc.Hooks().On(AfterScrap, func(context.Context, *part) error {
		return errors.New("metrics unavailable")
	})

	err := svc.Scrap(context.Background(), 2, 1)

	require.NoError(t, err)
	assert.False(t, repo.rows[1].IsActive())
	assert.Len(t, journal.entries, 1)
}
