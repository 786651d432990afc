package outbox

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/models/m_outbox"
)

// Retention is how long processed events are kept before cleanup.
type Retention struct {
	Completed time.Duration
	Failed    time.Duration
}

// DefaultRetention keeps failed events three times as long as completed ones.
var DefaultRetention = Retention{Completed: 30 * 24 * time.Hour, Failed: 90 * 24 * time.Hour}

func (r Retention) Validate() error {
	if r.Completed <= 0 || r.Failed <= 0 {
		return errors.New("retention periods must be positive")
	}
	return nil
}

// Cutoffs returns the processed_at bounds for completed and failed events.
func (r Retention) Cutoffs(now time.Time) (completed, failed time.Time) {
	now = now.UTC()
	return now.Add(-r.Completed), now.Add(-r.Failed)
}

func (r Retention) expired(now time.Time) (string, map[string]interface{}) {
	completed, failed := r.Cutoffs(now)
	where := fmt.Sprintf("(%[1]s = @completedStatus AND %[2]s < @completedCutoff) OR (%[1]s = @failedStatus AND %[2]s < @failedCutoff)",
		m_outbox.Status, m_outbox.ProcessedAt)
	return where, map[string]interface{}{
		"completedStatus": m_outbox.StatusCompleted,
		"completedCutoff": completed,
		"failedStatus":    m_outbox.StatusFailed,
		"failedCutoff":    failed,
	}
}

// CountStmt counts expired events per status. Rows are (status, count).
func (r Retention) CountStmt(now time.Time) spanner.Statement {
	where, params := r.expired(now)
	return spanner.Statement{
		SQL: fmt.Sprintf("SELECT %[1]s, COUNT(*) FROM %[2]s WHERE %[3]s GROUP BY %[1]s",
			m_outbox.Status, m_outbox.TableName, where),
		Params: params,
	}
}

// DeleteStmt removes expired events. It is safe to run as partitioned DML.
func (r Retention) DeleteStmt(now time.Time) spanner.Statement {
	where, params := r.expired(now)
	return spanner.Statement{
		SQL:    fmt.Sprintf("DELETE FROM %s WHERE %s", m_outbox.TableName, where),
		Params: params,
	}
}
