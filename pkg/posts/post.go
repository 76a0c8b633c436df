package posts

import (
	"time"
)

type Post struct {
	ID          interface{} `bson:"_id,omitempty" json:"id"`
	CommunityID string      `bson:"communityID" json:"communityId"`
	AuthorID    *int64      `bson:"authorID" json:"authorId"` // nil after the author account is removed
	CategoryID  string      `bson:"categoryID" json:"categoryId"`
	Title       string      `bson:"title" json:"title"`
	Content     string      `bson:"content" json:"content"`
	ImageURL    string      `bson:"imageURL,omitempty" json:"imageUrl,omitempty"`
	IsPinned    bool        `bson:"isPinned" json:"isPinned"`
	PinnedAt    *time.Time  `bson:"pinnedAt,omitempty" json:"pinnedAt,omitempty"`
	IsLocked    bool        `bson:"isLocked" json:"isLocked"`
	IsDeleted   bool        `bson:"isDeleted" json:"-"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updatedAt" json:"updatedAt"`
	EditedAt    *time.Time  `bson:"editedAt,omitempty" json:"editedAt,omitempty"`
}

// IDKey returns the post id in the string form used for counter keys and
// deterministic tie-breaks.
func (p *Post) IDKey() string {
	switch id := p.ID.(type) {
	case string:
		return id
	case interface{ Hex() string }:
		return id.Hex()
	default:
		return ""
	}
}
