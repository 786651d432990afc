// Package committer applies collected Spanner mutations atomically.
//
// Use cases follow one flow:
//
//	property, err := repo.GetByID(ctx, id)   // 1. load aggregate
//	err = property.SetStatus(status, now)     // 2. pure domain change
//	plan := committer.NewPlan()               // 3. collect mutations
//	plan.Add(repo.UpdateMut(property))
//	plan.AddMultiple(outbox mutations)        // 4. events in the same commit
//	return comm.Apply(ctx, plan)              // 5. one atomic write
//
// Read-modify-write updates that must observe the row they change
// (agent ratings) build their plan inside RunInTransaction instead.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan collects mutations from repositories and the outbox.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan. Nil mutations are ignored.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Applier applies a plan atomically. *Committer implements it.
type Applier interface {
	Apply(ctx context.Context, plan *CommitPlan) error
}

// Transactor runs read-modify-write plans. *Committer implements it.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn PlanFunc) error
}

// Committer executes CommitPlans against one Spanner database.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply writes the plan in a single blind-write transaction.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}
	return nil
}

// PlanFunc reads through txn and returns the mutations to buffer.
// It may run more than once if Spanner aborts the transaction.
type PlanFunc func(ctx context.Context, txn *spanner.ReadWriteTransaction) (*CommitPlan, error)

// RunInTransaction runs fn in a read-write transaction and buffers the plan it returns.
// Errors returned by fn are passed through unwrapped so callers can match sentinels.
func (c *Committer) RunInTransaction(ctx context.Context, fn PlanFunc) error {
	var fnErr error
	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		fnErr = nil
		plan, err := fn(ctx, txn)
		if err != nil {
			fnErr = err
			return err
		}
		if plan == nil || plan.IsEmpty() {
			return nil
		}
		return txn.BufferWrite(plan.Mutations())
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// Update runs a single DML statement in its own read-write transaction and
// returns the affected row count.
func (c *Committer) Update(ctx context.Context, stmt spanner.Statement) (int64, error) {
	var rows int64
	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		n, err := txn.Update(ctx, stmt)
		if err != nil {
			return err
		}
		rows = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute update: %w", err)
	}
	return rows, nil
}
