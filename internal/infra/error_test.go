//go:build unit

package infra_test

import (
	"testing"

	"tripflow/internal/infra"
	"tripflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("explicit kind wins", func(t *testing.T) {
		err := infra.WrapRepoErr("session missing", errs.New("no rows"), infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("defaults to db failure", func(t *testing.T) {
		err := infra.WrapRepoErr("query failed", errs.New("timeout"))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("unique violation detected", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23505"}
		err := infra.WrapRepoErr("insert failed", pgErr)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("message carries the cause", func(t *testing.T) {
		err := infra.WrapRepoErr("upsert failed", errs.New("broken pipe"))
		assert.Contains(t, err.Error(), "upsert failed")
		assert.Contains(t, err.Error(), "broken pipe")
	})

	t.Run("plain errors are not kinds", func(t *testing.T) {
		assert.False(t, infra.IsKind(errs.New("plain"), infra.KindNotFound))
	})
}
