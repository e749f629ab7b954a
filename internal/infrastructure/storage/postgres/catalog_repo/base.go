// Package catalog_repo provides PostgreSQL implementations for the part
// registry repositories.
package catalog_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"

	"protoparts/internal/core/apperror"
	"protoparts/internal/core/entity"
	"protoparts/internal/domain"
	"protoparts/internal/domain/filter"
	"protoparts/internal/infrastructure/storage/postgres"
)

// Alias is the table alias every repository query uses for its own table.
const Alias = "x"

// Fields maps API field names to SQL expressions. It is the allow-list for
// both filters and sorting.
type Fields map[string]string

// AuditFields are the fields shared by every scrappable entity.
func AuditFields() Fields {
	return Fields{
		domain.FieldID:         col("id"),
		domain.FieldCreatedBy:  col("created_by_id"),
		domain.FieldModifiedBy: col("modified_by_id"),
		domain.FieldDeletedBy:  col("deleted_by_id"),
		domain.FieldCreatedAt:  col("created_at"),
		domain.FieldModifiedAt: col("modified_at"),
		domain.FieldDeletedAt:  col("deleted_at"),
	}
}

// ClassificationFields are the fields of domain.Classification.
func ClassificationFields() Fields {
	return Fields{
		domain.FieldOutletCode:        col("outlet_code"),
		domain.FieldOutletTitle:       col("outlet_title"),
		domain.FieldProductGroupCode:  col("product_group_code"),
		domain.FieldProductGroupTitle: col("product_group_title"),
		domain.FieldLocationCode:      col("location_code"),
		domain.FieldLocationTitle:     col("location_title"),
		domain.FieldGateLevelCode:     col("gate_level_code"),
		domain.FieldGateLevelTitle:    col("gate_level_title"),
		domain.FieldEvidenceYearCode:  col("evidence_year_code"),
		domain.FieldEvidenceYear:      col("evidence_year_title"),
		domain.FieldCustomer:          col("customer"),
		domain.FieldProject:           col("project"),
		domain.FieldProjectNumber:     col("project_number"),
	}
}

// Merge returns the union of field sets. Later sets win.
func Merge(sets ...Fields) Fields {
	out := Fields{}
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

func col(name string) string {
	return Alias + "." + name
}

// IdentityColumns selects a joined users row as the nested identity prefix.
// A LEFT JOIN miss yields NULL in every column.
func IdentityColumns(userAlias, prefix string) []string {
	return []string{
		fmt.Sprintf(`%s.id AS "%s.id"`, userAlias, prefix),
		fmt.Sprintf(`%s.email AS "%s.email"`, userAlias, prefix),
		fmt.Sprintf(`%s.name AS "%s.name"`, userAlias, prefix),
		fmt.Sprintf(`%s.domain_identity AS "%s.username"`, userAlias, prefix),
	}
}

// IdentityJoin left-joins users on a foreign key column of the main table.
func IdentityJoin(userAlias, fkColumn string) string {
	return fmt.Sprintf("users %s ON %s.id = %s", userAlias, userAlias, col(fkColumn))
}

// auditTrail selects and joins entity.AuditTrail.
var (
	auditTrailColumns = concat(
		IdentityColumns("u_created", "created_by"),
		IdentityColumns("u_modified", "modified_by"),
		IdentityColumns("u_deleted", "deleted_by"),
	)
	auditTrailJoins = []string{
		IdentityJoin("u_created", "created_by_id"),
		IdentityJoin("u_modified", "modified_by_id"),
		IdentityJoin("u_deleted", "deleted_by_id"),
	}
)

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Config describes one repository.
type Config struct {
	Table string

	// Entity is used in not-found errors.
	Entity string

	// Columns are the writable columns of the table.
	Columns []string

	// ViewColumns are extra select expressions of the read model.
	ViewColumns []string

	// Joins are LEFT JOIN clauses of the read model.
	Joins []string

	Fields Fields

	// WithAuditTrail adds the created/modified/deleted identities to the view.
	WithAuditTrail bool
}

// BaseRepo provides list, lookup and write operations for a table.
// T is the stored row, V its read model.
type BaseRepo[T any, V any] struct {
	txManager *postgres.TxManager
	cfg       Config
}

// NewBaseRepo creates a new base repository.
func NewBaseRepo[T any, V any](txManager *postgres.TxManager, cfg Config) *BaseRepo[T, V] {
	if cfg.WithAuditTrail {
		cfg.ViewColumns = append(append([]string{}, cfg.ViewColumns...), auditTrailColumns...)
		cfg.Joins = append(append([]string{}, cfg.Joins...), auditTrailJoins...)
	}
	return &BaseRepo[T, V]{txManager: txManager, cfg: cfg}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *BaseRepo[T, V]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *BaseRepo[T, V]) querier(ctx context.Context) postgres.Querier {
	return r.txManager.GetQuerier(ctx)
}

func (r *BaseRepo[T, V]) from() string {
	return r.cfg.Table + " " + Alias
}

func (r *BaseRepo[T, V]) rowColumns() []string {
	cols := make([]string, 0, len(r.cfg.Columns))
	for _, c := range r.cfg.Columns {
		cols = append(cols, col(c))
	}
	return cols
}

// rowSelect selects the stored row only.
func (r *BaseRepo[T, V]) rowSelect() squirrel.SelectBuilder {
	return r.Builder().Select(r.rowColumns()...).From(r.from())
}

// viewSelect selects the read model with its joins.
func (r *BaseRepo[T, V]) viewSelect() squirrel.SelectBuilder {
	q := r.Builder().
		Select(append(r.rowColumns(), r.cfg.ViewColumns...)...).
		From(r.from())
	for _, j := range r.cfg.Joins {
		q = q.LeftJoin(j)
	}
	return q
}

// List retrieves one page of the read model.
func (r *BaseRepo[T, V]) List(ctx context.Context, f domain.ListFilter) (domain.ListResult[V], error) {
	result := domain.ListResult[V]{
		Items:    []V{},
		Page:     f.Page.Number,
		PageSize: f.Page.Size,
	}

	q, err := r.applyFilters(r.viewSelect(), f.Items)
	if err != nil {
		return result, err
	}

	// Count total (before pagination)
	countSQL, countArgs, err := r.Builder().
		Select("COUNT(*)").
		FromSelect(q, "sub").
		ToSql()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	querier := r.querier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count %s: %w", r.cfg.Table, err)
	}

	q = q.OrderBy(r.orderBy(f.Sort)...)
	if f.Page.Size > 0 {
		q = q.Limit(uint64(f.Page.Size)).Offset(uint64(f.Page.Offset()))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list %s: %w", r.cfg.Table, err)
	}

	return result, nil
}

// applyFilters ANDs the restrictions onto q. Fields outside the allow-list
// are rejected.
func (r *BaseRepo[T, V]) applyFilters(q squirrel.SelectBuilder, items []filter.Item) (squirrel.SelectBuilder, error) {
	for _, item := range items {
		expr, ok := r.cfg.Fields[item.Field]
		if !ok {
			return q, apperror.NewInvalidInput("unknown filter field").WithDetail("field", item.Field)
		}

		switch item.Operator {
		case filter.Equal, filter.InList:
			q = q.Where(squirrel.Eq{expr: item.Value})
		case filter.LessOrEqual:
			q = q.Where(squirrel.LtOrEq{expr: item.Value})
		case filter.GreaterOrEqual:
			q = q.Where(squirrel.GtOrEq{expr: item.Value})
		case filter.IsNull:
			q = q.Where(squirrel.Eq{expr: nil})
		case filter.IsNotNull:
			q = q.Where(squirrel.NotEq{expr: nil})
		case filter.Contains:
			q = q.Where(squirrel.ILike{expr: "%" + escapeLike(fmt.Sprint(item.Value)) + "%"})
		default:
			return q, apperror.NewInvalidInput("unsupported filter operator").
				WithDetail("field", item.Field).
				WithDetail("operator", string(item.Operator))
		}
	}
	return q, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// orderBy resolves the requested sort. Unknown fields fall back to the
// primary key; the primary key always breaks ties.
func (r *BaseRepo[T, V]) orderBy(s filter.Sort) []string {
	pk := col("id")
	expr, ok := r.cfg.Fields[s.Field]
	if !ok || expr == pk {
		dir := filter.Asc
		if ok {
			dir = s.Direction
		}
		return []string{pk + " " + string(dir)}
	}
	return []string{expr + " " + string(s.Direction), pk + " ASC"}
}

// GetView retrieves the read model by ID.
func (r *BaseRepo[T, V]) GetView(ctx context.Context, id int64) (V, error) {
	var v V
	err := r.get(ctx, &v, r.viewSelect().Where(squirrel.Eq{col("id"): id}), id)
	return v, err
}

// GetByID retrieves the stored row by ID.
func (r *BaseRepo[T, V]) GetByID(ctx context.Context, id int64) (*T, error) {
	var row T
	if err := r.get(ctx, &row, r.rowSelect().Where(squirrel.Eq{col("id"): id}), id); err != nil {
		return nil, err
	}
	return &row, nil
}

// GetForUpdate retrieves the stored row by ID with row lock.
func (r *BaseRepo[T, V]) GetForUpdate(ctx context.Context, id int64) (*T, error) {
	var row T
	q := r.rowSelect().
		Where(squirrel.Eq{col("id"): id}).
		Suffix("FOR UPDATE")
	if err := r.get(ctx, &row, q, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// FindOne executes a SELECT query and returns a single row.
func (r *BaseRepo[T, V]) FindOne(ctx context.Context, dst any, q squirrel.SelectBuilder, key any) error {
	return r.get(ctx, dst, q, key)
}

func (r *BaseRepo[T, V]) get(ctx context.Context, dst any, q squirrel.SelectBuilder, key any) error {
	sql, args, err := q.Limit(1).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.querier(ctx), dst, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return apperror.NewNotFound(r.cfg.Entity, key)
		}
		return fmt.Errorf("get %s: %w", r.cfg.Table, err)
	}
	return nil
}

// Insert writes the row's db-tagged columns and returns the generated ID.
func (r *BaseRepo[T, V]) Insert(ctx context.Context, row *T) (int64, error) {
	data := r.filterColumns(postgres.StructToMap(row, "id"))
	if len(data) == 0 {
		return 0, fmt.Errorf("no db tags found in %s row", r.cfg.Entity)
	}

	sql, args, err := r.Builder().
		Insert(r.cfg.Table).
		SetMap(data).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	var id int64
	if err := r.querier(ctx).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, r.mapWriteErr(err)
	}
	return id, nil
}

// Update writes every mutable column of the row.
func (r *BaseRepo[T, V]) Update(ctx context.Context, id int64, row *T) error {
	data := r.filterColumns(postgres.StructToMap(row, "id", "created_by_id", "created_at"))

	sql, args, err := r.Builder().
		Update(r.cfg.Table).
		SetMap(data).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}
	return r.exec(ctx, id, sql, args)
}

// SaveAudit writes the modification and deletion stamps back.
func (r *BaseRepo[T, V]) SaveAudit(ctx context.Context, a *entity.Audit) error {
	sql, args, err := r.Builder().
		Update(r.cfg.Table).
		Set("modified_by_id", a.ModifiedByID).
		Set("modified_at", a.ModifiedAt).
		Set("deleted_by_id", a.DeletedByID).
		Set("deleted_at", a.DeletedAt).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build save audit: %w", err)
	}
	return r.exec(ctx, a.ID, sql, args)
}

func (r *BaseRepo[T, V]) exec(ctx context.Context, id int64, sql string, args []any) error {
	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return r.mapWriteErr(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.cfg.Entity, id)
	}
	return nil
}

// filterColumns keeps only columns that exist in the table.
func (r *BaseRepo[T, V]) filterColumns(data map[string]any) map[string]any {
	out := make(map[string]any, len(r.cfg.Columns))
	for _, c := range r.cfg.Columns {
		if v, ok := data[c]; ok {
			out[c] = v
		}
	}
	return out
}

// mapWriteErr converts constraint violations to application errors.
func (r *BaseRepo[T, V]) mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperror.NewConflict(r.cfg.Entity+" already exists").
				WithDetail("constraint", pgErr.ConstraintName).
				WithCause(err)
		case "23503":
			return apperror.NewValidation("referenced record does not exist").
				WithDetail("entity", r.cfg.Entity).
				WithDetail("constraint", pgErr.ConstraintName).
				WithCause(err)
		}
	}
	return fmt.Errorf("write %s: %w", r.cfg.Table, err)
}
