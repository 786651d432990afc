package testutil

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/estate-service/internal/pkg/committer"
	"github.com/light-bringer/estate-service/internal/pkg/outbox"
)

// Outbox records every event it is asked to write.
type Outbox struct {
	Events []outbox.Event
}

func (o *Outbox) InsertMut(event outbox.Event) (*spanner.Mutation, error) {
	o.Events = append(o.Events, event)
	return spanner.Delete("outbox_events", spanner.Key{event.AggregateID()}), nil
}

// Types returns the recorded event types in order.
func (o *Outbox) Types() []string {
	out := make([]string, len(o.Events))
	for i, e := range o.Events {
		out[i] = e.EventType()
	}
	return out
}

// Applier records applied plans and can be made to fail.
type Applier struct {
	Plans []*committer.CommitPlan
	Err   error
}

func (a *Applier) Apply(_ context.Context, plan *committer.CommitPlan) error {
	if a.Err != nil {
		return a.Err
	}
	a.Plans = append(a.Plans, plan)
	return nil
}

// Mutations returns the number of mutations across applied plans.
func (a *Applier) Mutations() int {
	n := 0
	for _, p := range a.Plans {
		n += p.Count()
	}
	return n
}

// Transactor runs plan functions without a database. The transaction handed
// to fn is nil, so fakes used inside fn must ignore it.
type Transactor struct {
	Plans []*committer.CommitPlan
	Runs  int
	Err   error
}

func (tr *Transactor) RunInTransaction(ctx context.Context, fn committer.PlanFunc) error {
	tr.Runs++
	plan, err := fn(ctx, nil)
	if err != nil {
		return err
	}
	if tr.Err != nil {
		return tr.Err
	}
	if plan != nil && !plan.IsEmpty() {
		tr.Plans = append(tr.Plans, plan)
	}
	return nil
}
