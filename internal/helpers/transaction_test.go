package helpers

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs []*fakeTx
	err error
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func TestWithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		b := &fakeBeginner{}
		require.NoError(t, WithTransaction(ctx, b, func(pgx.Tx) error { return nil }))
		require.Len(t, b.txs, 1)
		assert.True(t, b.txs[0].committed)
		assert.False(t, b.txs[0].rolledBack)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		b := &fakeBeginner{}
		boom := errors.New("boom")
		err := WithTransaction(ctx, b, func(pgx.Tx) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.True(t, b.txs[0].rolledBack)
		assert.False(t, b.txs[0].committed)
	})

	t.Run("begin failure", func(t *testing.T) {
		b := &fakeBeginner{err: errors.New("pool closed")}
		err := WithTransaction(ctx, b, func(pgx.Tx) error { return nil })
		assert.ErrorContains(t, err, "failed to begin transaction")
	})
}

func TestWithTransactionRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("retries serialization failures", func(t *testing.T) {
		b := &fakeBeginner{}
		calls := 0
		err := WithTransactionRetry(ctx, b, 2, func(pgx.Tx) error {
			calls++
			if calls == 1 {
				return &pgconn.PgError{Code: "40001"}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.True(t, b.txs[1].committed)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		b := &fakeBeginner{}
		err := WithTransactionRetry(ctx, b, 2, func(pgx.Tx) error {
			return &pgconn.PgError{Code: "40001"}
		})
		require.Error(t, err)
		assert.Len(t, b.txs, 3)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		b := &fakeBeginner{}
		err := WithTransactionRetry(ctx, b, 2, func(pgx.Tx) error {
			return &pgconn.PgError{Code: "23514"}
		})
		require.Error(t, err)
		assert.Len(t, b.txs, 1)
	})
}
