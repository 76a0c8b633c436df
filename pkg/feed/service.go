package feed

import (
	"context"
	"errors"

	"communityhub/pkg/posts"

	"go.uber.org/zap"
)

// ErrNotCommunityMember is the only domain error the feed surfaces: the
// requester exists but is not an active member of the community.
var ErrNotCommunityMember = errors.New("requester is not a member of the community")

type MembershipChecker interface {
	IsActiveMember(ctx context.Context, userID int64, communityID string) (bool, error)
}

type Ranker interface {
	Rank(ctx context.Context, communityID, categoryID string, mode SortMode, limit, offset int) ([]*posts.Post, error)
}

// Service is the orchestration boundary of the feed: membership gate,
// cursor handling and page assembly around the ranking engine. It performs
// no writes.
type Service struct {
	engine     Ranker
	membership MembershipChecker
	logger     *zap.SugaredLogger
}

func NewService(engine Ranker, membership MembershipChecker, logger *zap.SugaredLogger) *Service {
	return &Service{engine: engine, membership: membership, logger: logger}
}

// GetFeed returns one page of a community feed. A RequesterID of 0 skips
// the membership check; this path is reserved for internal callers.
func (s *Service) GetFeed(ctx context.Context, q FeedQuery) (*FeedPage, error) {
	if q.RequesterID != 0 {
		member, err := s.membership.IsActiveMember(ctx, q.RequesterID, q.CommunityID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, ErrNotCommunityMember
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset := q.Offset
	if q.Cursor != "" {
		offset = DecodeCursor(q.Cursor)
	}
	if offset < 0 {
		offset = 0
	}

	// One extra row tells us whether a next page exists without a count
	// query.
	items, err := s.engine.Rank(ctx, q.CommunityID, q.CategoryID, q.Sort, limit+1, offset)
	if err != nil {
		s.logger.Errorw("feed ranking failed",
			"community", q.CommunityID, "sort", q.Sort, "offset", offset, "error", err)
		return nil, err
	}

	page := &FeedPage{HasMore: len(items) > limit}
	if page.HasMore {
		items = items[:limit]
		page.NextCursor = EncodeCursor(offset + limit)
	}

	if items == nil {
		items = []*posts.Post{}
	}
	page.Items = items

	return page, nil
}
