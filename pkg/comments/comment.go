package comments

import "time"

type Comment struct {
	ID        interface{} `bson:"_id,omitempty" json:"id"`
	PostID    interface{} `bson:"postID" json:"postId"`
	AuthorID  int64       `bson:"authorID" json:"authorId"`
	Body      string      `bson:"body" json:"body"`
	IsDeleted bool        `bson:"isDeleted" json:"-"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
}
