package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execTx stubs the one pgx.Tx method MarkPaidTx uses.
type execTx struct {
	pgx.Tx
	tag pgconn.CommandTag
}

func (t execTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return t.tag, nil
}

func TestMarkPaidTx_RequiresPendingRow(t *testing.T) {
	r := &PaymentRepository{}

	// a settlement that matches no pending payment must not pass silently
	err := r.MarkPaidTx(context.Background(), execTx{tag: pgconn.NewCommandTag("UPDATE 0")}, 1, "cs_1", "stripe", nil)
	require.Error(t, err)
	assert.EqualError(t, err, "no pending payment for order")

	err = r.MarkPaidTx(context.Background(), execTx{tag: pgconn.NewCommandTag("UPDATE 1")}, 1, "cs_1", "stripe", nil)
	assert.NoError(t, err)
}
