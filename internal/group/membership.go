package group

import "context"

// memberGetter is the slice of the repository the cache needs.
type memberGetter interface {
	GetMember(ctx context.Context, groupID, userID int64) (*GroupMember, error)
}

// MembershipCache memoizes membership lookups for the duration of a single
// request. Handlers create one per request and pass it down explicitly;
// it is not safe for concurrent use and must never outlive the request.
type MembershipCache struct {
	repo memberGetter
	seen map[[2]int64]bool
}

// NewMembershipCache creates an empty per-request cache over the repository.
func NewMembershipCache(repo memberGetter) *MembershipCache {
	return &MembershipCache{
		repo: repo,
		seen: make(map[[2]int64]bool),
	}
}

// IsMember reports whether the user has joined the group, hitting the
// database at most once per (group, user) pair.
func (c *MembershipCache) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	key := [2]int64{groupID, userID}
	if ok, cached := c.seen[key]; cached {
		return ok, nil
	}

	member, err := c.repo.GetMember(ctx, groupID, userID)
	if err != nil {
		return false, err
	}

	isMember := member != nil && member.Status == MemberStatusJoined
	c.seen[key] = isMember
	return isMember, nil
}
