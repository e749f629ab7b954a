// Package numerator allocates gap-free sequential numbers from the sys_sequences table.
package numerator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// ErrExhausted is returned when a sequence passes its configured maximum.
var ErrExhausted = errors.New("numerator: sequence exhausted")

// Querier interface for database operations.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Service allocates numbers with UPSERT ... RETURNING, so concurrent callers
// never receive the same value. Called inside a transaction, the allocation
// is rolled back with it.
type Service struct {
	querier func(ctx context.Context) Querier
}

// New creates a numerator bound to a single querier.
func New(querier Querier) *Service {
	return &Service{querier: func(context.Context) Querier { return querier }}
}

// NewFromContext creates a numerator that resolves the querier per call,
// typically the transaction carried by ctx.
func NewFromContext(resolve func(ctx context.Context) Querier) *Service {
	return &Service{querier: resolve}
}

// Config holds numbering configuration.
type Config struct {
	// Key identifies the sequence (e.g., "set:10:30:20")
	Key string

	// PadWidth is the minimum number width (default 4)
	PadWidth int

	// Max is the largest value the sequence may hand out. Zero means unbounded.
	Max int64
}

// SetIdentifierConfig is the sequence of prototype set identifiers: four
// digits per outlet, product group and evidence year.
func SetIdentifierConfig(outletCode, productGroupCode, evidenceYearCode string) Config {
	return Config{
		Key:      strings.Join([]string{"set", outletCode, productGroupCode, evidenceYearCode}, ":"),
		PadWidth: 4,
		Max:      9999,
	}
}

// Next allocates and formats the next number of the sequence.
func (s *Service) Next(ctx context.Context, cfg Config) (string, error) {
	if s == nil {
		return "", fmt.Errorf("numerator service is not initialized")
	}

	var num int64
	err := s.querier(ctx).QueryRow(ctx, `
		INSERT INTO sys_sequences (key, current_val)
		VALUES ($1, 1)
		ON CONFLICT (key) DO UPDATE SET current_val = sys_sequences.current_val + 1
		RETURNING current_val
	`, cfg.Key).Scan(&num)
	if err != nil {
		return "", fmt.Errorf("next %s: %w", cfg.Key, err)
	}

	if cfg.Max > 0 && num > cfg.Max {
		return "", fmt.Errorf("%w: %s reached %d", ErrExhausted, cfg.Key, cfg.Max)
	}

	return Format(cfg, num), nil
}

// SetCurrent moves the sequence so the next allocation returns value+1 (for data imports).
func (s *Service) SetCurrent(ctx context.Context, cfg Config, value int64) error {
	var result int64
	err := s.querier(ctx).QueryRow(ctx, `
		INSERT INTO sys_sequences (key, current_val)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET current_val = $2
		RETURNING current_val
	`, cfg.Key, value).Scan(&result)
	if err != nil {
		return fmt.Errorf("set %s: %w", cfg.Key, err)
	}
	return nil
}

// Format pads num to the configured width.
func Format(cfg Config, num int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = 4
	}
	return fmt.Sprintf("%0*d", padWidth, num)
}
