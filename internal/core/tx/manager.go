// Package tx declares the transaction boundary domain services run in.
package tx

import "context"

// Manager runs fn inside a transaction carried by the context passed to it.
// A call made while a transaction is already in ctx joins it.
// Any error returned by fn rolls the transaction back.
type Manager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
