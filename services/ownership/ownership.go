// Package ownership resolves which user owns a goal or milestone and
// enforces the one authorization invariant of the system: only the
// transitive owner may touch a resource. Milestones carry no owner column,
// so their owner is resolved through the parent goal.
package ownership

import (
	"context"
	"errors"

	"github.com/DengXianqi/learning-tracker/repository"
)

// ErrForbidden is returned when the acting user is not the resource owner.
var ErrForbidden = errors.New("forbidden")

type Resolver struct {
	goals      *repository.GoalRepo
	milestones *repository.MilestoneRepo
}

func NewResolver(goals *repository.GoalRepo, milestones *repository.MilestoneRepo) *Resolver {
	return &Resolver{goals: goals, milestones: milestones}
}

// ResolveGoalOwner returns the owning user of a goal, or
// repository.ErrNotFound when the goal does not exist.
func (r *Resolver) ResolveGoalOwner(ctx context.Context, goalID uint) (uint, error) {
	return r.goals.OwnerID(ctx, goalID)
}

// ResolveMilestoneOwner resolves milestone -> goal -> user. A milestone
// whose goal no longer exists resolves to repository.ErrNotFound, never to
// a silent success.
func (r *Resolver) ResolveMilestoneOwner(ctx context.Context, milestoneID uint) (goalID, ownerID uint, err error) {
	goalID, err = r.milestones.GoalID(ctx, milestoneID)
	if err != nil {
		return 0, 0, err
	}
	ownerID, err = r.goals.OwnerID(ctx, goalID)
	if err != nil {
		return 0, 0, err
	}
	return goalID, ownerID, nil
}

// Authorize grants access when the resolved owner is the acting user.
func (r *Resolver) Authorize(ownerID, actingUserID uint) error {
	if ownerID != actingUserID {
		return ErrForbidden
	}
	return nil
}

// AuthorizeGoal resolves and authorizes in one step. It must be called
// before any mutating goal operation proceeds.
func (r *Resolver) AuthorizeGoal(ctx context.Context, goalID, actingUserID uint) error {
	ownerID, err := r.ResolveGoalOwner(ctx, goalID)
	if err != nil {
		return err
	}
	return r.Authorize(ownerID, actingUserID)
}

// AuthorizeMilestone resolves the two-hop chain and authorizes, returning
// the parent goal id for callers that need it.
func (r *Resolver) AuthorizeMilestone(ctx context.Context, milestoneID, actingUserID uint) (uint, error) {
	goalID, ownerID, err := r.ResolveMilestoneOwner(ctx, milestoneID)
	if err != nil {
		return 0, err
	}
	if err := r.Authorize(ownerID, actingUserID); err != nil {
		return 0, err
	}
	return goalID, nil
}
