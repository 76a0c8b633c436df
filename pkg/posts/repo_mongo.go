package posts

import (
	"context"
	"time"

	"communityhub/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostsRepoMongo struct {
	collection common.CollectionHelper
}

func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	return mongo.Connect(ctx, options.Client().ApplyURI(uri))
}

func NewPostsRepoMongo(db *mongo.Database) *PostsRepoMongo {
	return &PostsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("posts")}}
}

// GetFeedCandidates returns the non-deleted posts of a community, newest
// first with _id as the secondary key so equal timestamps order the same way
// on every call. categoryID narrows the set when non-empty.
func (r *PostsRepoMongo) GetFeedCandidates(ctx context.Context, communityID, categoryID string) ([]*Post, error) {
	filter := bson.M{"communityID": communityID, "isDeleted": false}
	if categoryID != "" {
		filter["categoryID"] = categoryID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	var result []*Post
	err = cur.All(ctx, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PostsRepoMongo) GetByID(ctx context.Context, id interface{}) (*Post, error) {
	res := r.collection.FindOne(ctx, bson.M{"_id": id, "isDeleted": false})

	post := &Post{}
	err := res.Decode(post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (r *PostsRepoMongo) Add(ctx context.Context, p *Post) (interface{}, error) {
	res, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}

	return res.GetInsertedID(), nil
}

// SoftDelete marks a post deleted; the row stays for audit but never shows
// in feeds again. Returns false when the post was already gone.
func (r *PostsRepoMongo) SoftDelete(ctx context.Context, id interface{}) (bool, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "isDeleted": false},
		bson.D{
			{Key: "$set", Value: bson.D{{Key: "isDeleted", Value: true}, {Key: "updatedAt", Value: time.Now().UTC()}}},
		})
	if err != nil {
		return false, err
	}

	return res.GetModifiedCount() > 0, nil
}

// Pin sets the pin flag and stamps pinnedAt. pinnedAt is only ever written
// here, so unpinning leaves the previous value behind.
func (r *PostsRepoMongo) Pin(ctx context.Context, id interface{}, pinnedAt time.Time) (*Post, error) {
	return r.updateAndFetch(ctx, id, bson.D{{Key: "isPinned", Value: true}, {Key: "pinnedAt", Value: pinnedAt}})
}

func (r *PostsRepoMongo) Unpin(ctx context.Context, id interface{}) (*Post, error) {
	return r.updateAndFetch(ctx, id, bson.D{{Key: "isPinned", Value: false}})
}

func (r *PostsRepoMongo) Lock(ctx context.Context, id interface{}) (*Post, error) {
	return r.updateAndFetch(ctx, id, bson.D{{Key: "isLocked", Value: true}})
}

func (r *PostsRepoMongo) Unlock(ctx context.Context, id interface{}) (*Post, error) {
	return r.updateAndFetch(ctx, id, bson.D{{Key: "isLocked", Value: false}})
}

// Purge permanently removes a soft-deleted post.
func (r *PostsRepoMongo) Purge(ctx context.Context, id interface{}) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "isDeleted": true})
	if err != nil {
		return false, err
	}

	if res.GetDeletedCount() == 0 {
		return false, nil
	}

	return true, nil
}

func (r *PostsRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}

func (r *PostsRepoMongo) updateAndFetch(ctx context.Context, id interface{}, set bson.D) (*Post, error) {
	after := options.After
	res := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.D{
			{Key: "$set", Value: set},
		},
		options.FindOneAndUpdate().SetReturnDocument(after))

	post := &Post{}
	err := res.Decode(post)
	if err != nil {
		return nil, err
	}

	return post, nil
}
