package outbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetention(t *testing.T) {
	now := time.Date(2026, 6, 30, 12, 0, 0, 0, time.UTC)

	t.Run("cutoffs", func(t *testing.T) {
		completed, failed := DefaultRetention.Cutoffs(now)
		assert.Equal(t, time.Date(2026, 5, 31, 12, 0, 0, 0, time.UTC), completed)
		assert.Equal(t, time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC), failed)
	})

	t.Run("validate", func(t *testing.T) {
		assert.NoError(t, DefaultRetention.Validate())
		assert.Error(t, Retention{Completed: time.Hour}.Validate())
	})

	t.Run("delete statement", func(t *testing.T) {
		stmt := DefaultRetention.DeleteStmt(now)
		assert.Equal(t,
			"DELETE FROM outbox_events WHERE (status = @completedStatus AND processed_at < @completedCutoff) OR (status = @failedStatus AND processed_at < @failedCutoff)",
			stmt.SQL)
		assert.Equal(t, "completed", stmt.Params["completedStatus"])
		assert.Equal(t, "failed", stmt.Params["failedStatus"])
	})

	t.Run("count statement groups by status", func(t *testing.T) {
		stmt := DefaultRetention.CountStmt(now)
		assert.Contains(t, stmt.SQL, "SELECT status, COUNT(*) FROM outbox_events WHERE")
		assert.Contains(t, stmt.SQL, "GROUP BY status")
		assert.Len(t, stmt.Params, 4)
	})

	t.Run("pending events are never expired", func(t *testing.T) {
		stmt := DefaultRetention.DeleteStmt(now)
		assert.NotContains(t, stmt.SQL, "pending")
	})
}
