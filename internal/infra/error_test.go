//go:build unit

package infra_test

import (
	"context"
	"fmt"
	"net"
	"testing"

	"almaaz-api/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErrClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505"},
			want: infra.KindDuplicateKey,
		},
		{
			name: "other postgres error",
			err:  &pgconn.PgError{Code: "42703"},
			want: infra.KindDBFailure,
		},
		{
			name: "missing row",
			err:  pgx.ErrNoRows,
			want: infra.KindNotFound,
		},
		{
			name: "deadline exceeded mid-query",
			err:  fmt.Errorf("query: %w", context.DeadlineExceeded),
			want: infra.KindUnavailable,
		},
		{
			name: "network failure mid-query",
			err:  &net.OpError{Op: "read", Net: "tcp", Err: fmt.Errorf("connection reset")},
			want: infra.KindUnavailable,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("something broke"),
			want: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := infra.WrapRepoErr("op failed", tt.err)
			assert.True(t, infra.IsKind(wrapped, tt.want), "want kind %s", tt.want)
		})
	}
}

func TestWrapRepoErrExplicitKindWins(t *testing.T) {
	wrapped := infra.WrapRepoErr("no order row", pgx.ErrNoRows, infra.KindStaleUpdate)
	assert.True(t, infra.IsKind(wrapped, infra.KindStaleUpdate))
	assert.False(t, infra.IsKind(wrapped, infra.KindNotFound))
}
