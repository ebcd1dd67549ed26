package sync

import (
	"context"

	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/guard"
)

// resolveMembers flattens the member rosters of every group the list is
// shared with, deduplicated by member id with first occurrence winning.
// The result is rebuilt on every list-document update rather than cached:
// membership drives who a task can be assigned to, and a stale roster is
// worse than an extra read.
func (c *Controller) resolveMembers(ctx context.Context, groupIDs []string) []domain.Member {
	if len(groupIDs) == 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var out []domain.Member
	for _, groupID := range groupIDs {
		gid := groupID
		members, err := guard.WithTimeout(ctx, c.listTimeout, "group members", func(ctx context.Context) ([]domain.Member, error) {
			return c.groups.GetMembers(ctx, gid)
		})
		if err != nil {
			// Degrade to whatever resolved so far; assignment just offers
			// fewer names until the next update.
			c.logger.Error(err)
			continue
		}
		for _, m := range members {
			if _, ok := seen[m.ID]; ok {
				continue
			}
			seen[m.ID] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}

// Members returns the resolved roster for the open list, ordered by first
// occurrence across the list's groups.
func (c *Controller) Members() []domain.Member {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Member, len(c.members))
	copy(out, c.members)
	return out
}
