package comments

import (
	"context"
	"time"

	"communityhub/pkg/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CommentsRepoMongo struct {
	collection common.CollectionHelper
}

func NewCommentsRepoMongo(db *mongo.Database) *CommentsRepoMongo {
	return &CommentsRepoMongo{collection: &common.MongoCollection{Collection: db.Collection("comments")}}
}

func (r *CommentsRepoMongo) GetByPostID(ctx context.Context, postID interface{}) ([]*Comment, error) {
	cur, err := r.collection.Find(ctx, bson.M{"postID": postID, "isDeleted": false})
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	var result []*Comment
	err = cur.All(ctx, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *CommentsRepoMongo) Add(ctx context.Context, comment *Comment) (interface{}, error) {
	res, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}

	return res.GetInsertedID(), nil
}

func (r *CommentsRepoMongo) SoftDelete(ctx context.Context, id interface{}) (bool, error) {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "isDeleted": false},
		bson.D{
			{Key: "$set", Value: bson.D{{Key: "isDeleted", Value: true}, {Key: "deletedAt", Value: time.Now().UTC()}}},
		})
	if err != nil {
		return false, err
	}

	return res.GetModifiedCount() > 0, nil
}

func (r *CommentsRepoMongo) CountByPostID(ctx context.Context, postID interface{}) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"postID": postID, "isDeleted": false})
}

// CountByPostIDs resolves live comment counts for a whole page of posts in
// one query. The result map is keyed by the post id in string form; posts
// without comments are simply absent.
func (r *CommentsRepoMongo) CountByPostIDs(ctx context.Context, postIDs []interface{}) (map[string]int64, error) {
	if len(postIDs) == 0 {
		return map[string]int64{}, nil
	}

	cur, err := r.collection.Find(ctx, bson.M{
		"postID":    bson.M{"$in": postIDs},
		"isDeleted": false,
	})
	if err != nil {
		return nil, err
	}

	defer cur.Close(ctx)

	var result []*Comment
	err = cur.All(ctx, &result)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(postIDs))
	for _, c := range result {
		counts[idKey(c.PostID)]++
	}

	return counts, nil
}

func (r *CommentsRepoMongo) ParseID(in string) (interface{}, error) {
	return primitive.ObjectIDFromHex(in)
}

func idKey(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case interface{ Hex() string }:
		return v.Hex()
	default:
		return ""
	}
}
