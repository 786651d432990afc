package agent_properties

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/estate-service/internal/app/property/contracts"
	"github.com/light-bringer/estate-service/internal/models/m_property"
	"github.com/light-bringer/estate-service/internal/pkg/apperr"
	"github.com/light-bringer/estate-service/internal/pkg/query"
)

type captureReadModel struct {
	got   contracts.ListQuery
	total int64
}

func (c *captureReadModel) GetProperty(context.Context, string) (*contracts.PropertyDTO, error) {
	return nil, nil
}

func (c *captureReadModel) ListProperties(_ context.Context, q contracts.ListQuery) ([]*contracts.PropertyDTO, int64, error) {
	c.got = q
	return []*contracts.PropertyDTO{{ID: "p1"}, {ID: "p2"}}, c.total, nil
}

func TestAgentProperties(t *testing.T) {
	ctx := context.Background()

	t.Run("scopes to the agent's active listings", func(t *testing.T) {
		rm := &captureReadModel{total: 14}
		res, err := NewQuery(rm).Execute(ctx, &Request{AgentID: "agent-1", Page: "2"})
		require.NoError(t, err)

		stmt := query.From(m_property.TableName).Select(m_property.PropertyID).WhereAll(rm.got.Conditions).Build()
		assert.Equal(t, "SELECT property_id FROM properties WHERE agent_id = @p0 AND status = @p1", stmt.SQL)
		assert.Equal(t, "agent-1", stmt.Params["p0"])
		assert.Equal(t, "active", stmt.Params["p1"])

		assert.Equal(t, int64(12), rm.got.Page.Offset())
		assert.Equal(t, 2, res.Meta.Count)
		assert.Equal(t, int64(14), res.Meta.Total)
		assert.Equal(t, int64(2), res.Meta.Pages)
	})

	t.Run("rejects bad paging and sorting", func(t *testing.T) {
		q := NewQuery(&captureReadModel{})
		_, err := q.Execute(ctx, &Request{AgentID: "agent-1", Page: "0"})
		_, ok := apperr.AsValidation(err)
		assert.True(t, ok)

		_, err = q.Execute(ctx, &Request{AgentID: "agent-1", Sort: "title"})
		_, ok = apperr.AsValidation(err)
		assert.True(t, ok)
	})
}
