package domain

import "context"

// UnitOfWork scopes multi-query reads to one transaction so the analytics
// engine sees a consistent snapshot across closure expansion levels.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
