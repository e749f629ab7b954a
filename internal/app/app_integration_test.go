//go:build integration

package app_test

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"protoparts/internal/app"
	"protoparts/internal/core/apperror"
	"protoparts/internal/domain"
	"protoparts/internal/domain/prototype"
	"protoparts/internal/domain/prototypeset"
	"protoparts/internal/domain/user"
	"protoparts/internal/infrastructure/config"
	"protoparts/internal/infrastructure/storage/postgres/catalog_repo"
	"protoparts/pkg/logger"
	"protoparts/pkg/numerator"
)

var testApp *app.App

func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("protoparts"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "start postgres: %v\n", err)
		return 1
	}
	defer func() { _ = container.Terminate(ctx) }()

	host, err := container.Host(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "container host: %v\n", err)
		return 1
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "container port: %v\n", err)
		return 1
	}

	cfg := &config.Config{
		App: config.AppConfig{Name: "protoparts-test", Env: "test", Version: "test"},
		Database: config.DatabaseConfig{
			Host:        host,
			Port:        port.Int(),
			User:        "postgres",
			Password:    "postgres",
			DBName:      "protoparts",
			SSLMode:     "disable",
			MaxConns:    5,
			MinConns:    1,
			AutoMigrate: true,
		},
		JWT: config.JWTConfig{Secret: "integration-secret", Issuer: "protoparts", AccessTokenTTL: time.Hour},
	}

	testApp, err = app.New(ctx, cfg, logger.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "build app: %v\n", err)
		return 1
	}
	defer testApp.Close()

	return m.Run()
}

var seq atomic.Int64

// uniq returns a short tag that scopes a test's rows through projectNumber.
func uniq(t *testing.T) string {
	return "T" + strconv.FormatInt(seq.Add(1), 10) + "-" + strconv.FormatInt(time.Now().UnixNano()%100000, 10)
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// clocked builds set and prototype services whose audit stamps use now.
func clocked(now func() time.Time) (*prototypeset.Service, *prototype.Service) {
	txm := testApp.TxManager
	users := catalog_repo.NewUserRepo(txm)
	prototypes := catalog_repo.NewPrototypeRepo(txm)
	numbers := numerator.NewFromContext(func(ctx context.Context) numerator.Querier {
		return txm.GetQuerier(ctx)
	})

	sets := prototypeset.NewService(prototypeset.Deps{
		Repo:        catalog_repo.NewPrototypeSetRepo(txm),
		Prototypes:  prototypes,
		Identifiers: prototypeset.NewNumeratorAllocator(numbers),
		Users:       users,
	}, domain.LifecycleServiceConfig[*prototypeset.PrototypeSet]{TxManager: txm, Journal: testApp.Audit, Clock: now})
	protos := prototype.NewService(prototypes, users,
		domain.LifecycleServiceConfig[*prototype.Prototype]{TxManager: txm, Journal: testApp.Audit, Clock: now})
	return sets, protos
}

func createUser(t *testing.T, ctx context.Context) user.User {
	t.Helper()
	tag := uniq(t)
	u := user.NewUser("user-"+tag, "user-"+tag+"@example.com", "User "+tag, false)
	require.NoError(t, testApp.Users.Create(ctx, u))
	return *u
}

func classification(tag, outlet string, year int) domain.Classification {
	return domain.Classification{
		OutletCode:        outlet,
		OutletTitle:       "Outlet " + outlet,
		ProductGroupCode:  "30",
		ProductGroupTitle: "Exterior",
		LocationCode:      "FR",
		LocationTitle:     "France",
		GateLevelCode:     "30",
		GateLevelTitle:    "Gate 30",
		EvidenceYearCode:  fmt.Sprintf("%02d", year%100),
		EvidenceYearTitle: year,
		Project:           "Project " + outlet,
		ProjectNumber:     tag,
	}
}

func createSet(t *testing.T, ctx context.Context, svc *prototypeset.Service, actor user.User, c domain.Classification, count int) prototypeset.View {
	t.Helper()
	v, err := svc.Create(ctx, actor.ID, prototypeset.CreateCommand{
		Classification: c,
		Prototypes: []prototypeset.PrototypeGroup{
			{PartTypeCode: "00", PartTypeTitle: "Housing", Count: count, OwnerID: actor.ID},
		},
	})
	require.NoError(t, err)
	return v
}

func setIDs(t *testing.T, q prototypeset.ListQuery) []int64 {
	t.Helper()
	r, err := testApp.PrototypeSets.List(context.Background(), q)
	require.NoError(t, err)
	ids := make([]int64, 0, len(r.Items))
	for _, v := range r.Items {
		ids = append(ids, v.ID)
	}
	return ids
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestScenario_TwoPrototypesActiveAndScrapped(t *testing.T) {
	ctx := context.Background()
	owner := createUser(t, ctx)
	tag := uniq(t)

	sets, _ := clocked(fixedClock(time.Date(2020, 12, 1, 9, 0, 0, 0, time.UTC)))
	set := createSet(t, ctx, sets, owner, classification(tag, "10", 2020), 2)

	scrappedAt := time.Date(2021, 1, 1, 10, 0, 0, 0, time.UTC)
	_, protos := clocked(fixedClock(scrappedAt))

	all, err := protos.ListBySet(ctx, set.ID, prototype.ListQuery{PageQuery: domain.PageQuery{SortBy: prototype.FieldIndex}})
	require.NoError(t, err)
	require.Len(t, all.Items, 2)
	require.NoError(t, protos.Scrap(ctx, owner.ID, all.Items[1].ID))

	list := func(active *bool) []prototype.View {
		q := prototype.ListQuery{
			PageQuery:  domain.PageQuery{SortBy: prototype.FieldIndex},
			AuditQuery: domain.AuditQuery{IsActive: active},
		}
		r, err := protos.ListBySet(ctx, set.ID, q)
		require.NoError(t, err)
		return r.Items
	}

	both := list(nil)
	require.Len(t, both, 2)
	assert.Equal(t, 1, both[0].Index)
	assert.Equal(t, 2, both[1].Index)

	active := list(boolPtr(true))
	require.Len(t, active, 1)
	assert.Equal(t, 1, active[0].Index)
	assert.Nil(t, active[0].DeletedAt)

	scrapped := list(boolPtr(false))
	require.Len(t, scrapped, 1)
	assert.Equal(t, 2, scrapped[0].Index)
	require.NotNil(t, scrapped[0].DeletedAt)
	assert.True(t, scrappedAt.Equal(*scrapped[0].DeletedAt))
	assert.Equal(t, "10.30.00.20.FR."+set.SetIdentifier+".30_002", scrapped[0].PartCode().String())
}

func TestList_FilterConjunction(t *testing.T) {
	ctx := context.Background()
	owner := createUser(t, ctx)
	tag := uniq(t)

	a := createSet(t, ctx, testApp.PrototypeSets, owner, classification(tag, "11", 2024), 1)
	b := createSet(t, ctx, testApp.PrototypeSets, owner, classification(tag, "12", 2024), 1)
	cls := classification(tag, "11", 2024)
	cls.Project = "Other"
	c := createSet(t, ctx, testApp.PrototypeSets, owner, cls, 1)

	scope := domain.ClassificationQuery{ProjectNumbers: []string{tag}}
	all := setIDs(t, prototypeset.ListQuery{ClassificationQuery: scope})
	assert.ElementsMatch(t, []int64{a.ID, b.ID, c.ID}, all)

	byOutlet := scope
	byOutlet.OutletCodes = []string{"11"}
	assert.ElementsMatch(t, []int64{a.ID, c.ID}, setIDs(t, prototypeset.ListQuery{ClassificationQuery: byOutlet}))

	byProject := scope
	byProject.Projects = []string{"Project 11", "Project 12"}
	assert.ElementsMatch(t, []int64{a.ID, b.ID}, setIDs(t, prototypeset.ListQuery{ClassificationQuery: byProject}))

	both := byOutlet
	both.Projects = byProject.Projects
	assert.ElementsMatch(t, []int64{a.ID}, setIDs(t, prototypeset.ListQuery{ClassificationQuery: both}))
}

func TestList_ActiveFlagPartitions(t *testing.T) {
	ctx := context.Background()
	owner := createUser(t, ctx)
	tag := uniq(t)

	var ids []int64
	for _, outlet := range []string{"21", "22", "23"} {
		ids = append(ids, createSet(t, ctx, testApp.PrototypeSets, owner, classification(tag, outlet, 2024), 1).ID)
	}
	require.NoError(t, testApp.PrototypeSets.Scrap(ctx, owner.ID, ids[1]))

	scope := domain.ClassificationQuery{ProjectNumbers: []string{tag}}
	all := setIDs(t, prototypeset.ListQuery{ClassificationQuery: scope})
	active := setIDs(t, prototypeset.ListQuery{ClassificationQuery: scope, AuditQuery: domain.AuditQuery{IsActive: boolPtr(true)}})
	inactive := setIDs(t, prototypeset.ListQuery{ClassificationQuery: scope, AuditQuery: domain.AuditQuery{IsActive: boolPtr(false)}})

	assert.ElementsMatch(t, all, append(append([]int64{}, active...), inactive...))
	assert.ElementsMatch(t, []int64{ids[0], ids[2]}, active)
	assert.ElementsMatch(t, []int64{ids[1]}, inactive)
}

func TestList_RangeLimitsAreInclusive(t *testing.T) {
	ctx := context.Background()
	owner := createUser(t, ctx)
	tag := uniq(t)

	byYear := map[int]int64{}
	for _, year := range []int{2020, 2021, 2022, 2023} {
		byYear[year] = createSet(t, ctx, testApp.PrototypeSets, owner, classification(tag, "31", year), 1).ID
	}

	q := prototypeset.ListQuery{ClassificationQuery: domain.ClassificationQuery{
		ProjectNumbers:         []string{tag},
		EvidenceYearLowerLimit: intPtr(2021),
		EvidenceYearUpperLimit: intPtr(2022),
	}}
	assert.ElementsMatch(t, []int64{byYear[2021], byYear[2022]}, setIDs(t, q))

	created := time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)
	sets, _ := clocked(fixedClock(created))
	exact := createSet(t, ctx, sets, owner, classification(tag, "32", 2024), 1)

	at := func(lower, upper time.Time) []int64 {
		return setIDs(t, prototypeset.ListQuery{
			ClassificationQuery: domain.ClassificationQuery{ProjectNumbers: []string{tag}, OutletCodes: []string{"32"}},
			AuditQuery:          domain.AuditQuery{CreatedAtLowerLimit: &lower, CreatedAtUpperLimit: &upper},
		})
	}
	assert.Equal(t, []int64{exact.ID}, at(created, created))
	assert.Empty(t, at(created.Add(time.Microsecond), created.Add(time.Hour)))
	assert.Empty(t, at(created.Add(-time.Hour), created.Add(-time.Microsecond)))
}

func TestGet_NullAuditIdentityIsAllNil(t *testing.T) {
	ctx := context.Background()
	owner := createUser(t, ctx)
	set := createSet(t, ctx, testApp.PrototypeSets, owner, classification(uniq(t), "41", 2024), 1)

	assert.Nil(t, set.DeletedBy.ID)
	assert.Nil(t, set.DeletedBy.Email)
	assert.Nil(t, set.DeletedBy.Name)
	assert.Nil(t, set.DeletedBy.Username)
	require.NotNil(t, set.CreatedBy.Username)
	assert.Equal(t, owner.DomainIdentity, *set.CreatedBy.Username)

	require.NoError(t, testApp.PrototypeSets.Scrap(ctx, owner.ID, set.ID))
	scrapped, err := testApp.PrototypeSets.Get(ctx, set.ID)
	require.NoError(t, err)
	require.NotNil(t, scrapped.DeletedBy.ID)
	assert.Equal(t, owner.ID, *scrapped.DeletedBy.ID)
	assert.Equal(t, owner.Email, *scrapped.DeletedBy.Email)
}

func TestScrapAndReactivate_AreIdempotent(t *testing.T) {
	ctx := context.Background()
	owner := createUser(t, ctx)
	other := createUser(t, ctx)
	set := createSet(t, ctx, testApp.PrototypeSets, owner, classification(uniq(t), "51", 2024), 1)

	first := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	early, _ := clocked(fixedClock(first))
	late, _ := clocked(fixedClock(first.Add(time.Hour)))

	require.NoError(t, early.Scrap(ctx, owner.ID, set.ID))
	require.NoError(t, late.Scrap(ctx, other.ID, set.ID))

	v, err := testApp.PrototypeSets.Get(ctx, set.ID)
	require.NoError(t, err)
	require.NotNil(t, v.DeletedAt)
	assert.True(t, first.Equal(*v.DeletedAt))
	assert.Equal(t, owner.ID, *v.DeletedByID)

	require.NoError(t, late.Reactivate(ctx, other.ID, set.ID))
	require.NoError(t, early.Reactivate(ctx, owner.ID, set.ID))

	v, err = testApp.PrototypeSets.Get(ctx, set.ID)
	require.NoError(t, err)
	assert.Nil(t, v.DeletedAt)
	assert.Nil(t, v.DeletedByID)
	assert.Equal(t, other.ID, v.ModifiedByID)

	history, err := testApp.Audit.GetEntityHistory(ctx, "prototype set", set.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 3)
}

func TestScrap_MissingEntity(t *testing.T) {
	err := testApp.Prototypes.Scrap(context.Background(), 1, 987654321)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCreate_AllocatesSetIdentifiersPerClassification(t *testing.T) {
	ctx := context.Background()
	owner := createUser(t, ctx)
	tag := uniq(t)

	first := createSet(t, ctx, testApp.PrototypeSets, owner, classification(tag, "61", 2019), 1)
	second := createSet(t, ctx, testApp.PrototypeSets, owner, classification(tag, "61", 2019), 1)
	assert.Equal(t, "0001", first.SetIdentifier)
	assert.Equal(t, "0002", second.SetIdentifier)

	require.NoError(t, testApp.Numbers.SetCurrent(ctx, numerator.SetIdentifierConfig("61", "30", "19"), 9999))

	_, err := testApp.PrototypeSets.Create(ctx, owner.ID, prototypeset.CreateCommand{
		Classification: classification(tag, "61", 2019),
		Prototypes:     []prototypeset.PrototypeGroup{{PartTypeCode: "00", PartTypeTitle: "Housing", Count: 1, OwnerID: owner.ID}},
	})
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeSequenceExhausted, appErr.Code)
}

func TestUpdate_ScrappedPrototypeIsRejected(t *testing.T) {
	ctx := context.Background()
	owner := createUser(t, ctx)
	set := createSet(t, ctx, testApp.PrototypeSets, owner, classification(uniq(t), "71", 2024), 1)

	r, err := testApp.Prototypes.ListBySet(ctx, set.ID, prototype.ListQuery{})
	require.NoError(t, err)
	require.Len(t, r.Items, 1)
	id := r.Items[0].ID

	comment := "checked"
	v, err := testApp.Prototypes.Update(ctx, owner.ID, id, prototype.UpdateCommand{Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, "checked", v.Comment)

	require.NoError(t, testApp.Prototypes.Scrap(ctx, owner.ID, id))
	_, err = testApp.Prototypes.Update(ctx, owner.ID, id, prototype.UpdateCommand{Comment: &comment})
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeEntityScrapped, appErr.Code)
}
