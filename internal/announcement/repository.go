package announcement

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AnnouncementRepository handles DB operations for announcements.
type AnnouncementRepository struct {
	collection *mongo.Collection
}

// NewAnnouncementRepository creates a new repository for announcements.
func NewAnnouncementRepository(db *mongo.Database) *AnnouncementRepository {
	return &AnnouncementRepository{collection: db.Collection("announcements")}
}

// Insert stores a new announcement and returns the identifier assigned by the store.
func (r *AnnouncementRepository) Insert(ctx context.Context, a *Announcement) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, a)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("store assigned a non-ObjectID identifier")
	}
	return id, nil
}

// FindActive returns announcements whose window contains now, soonest to expire first.
func (r *AnnouncementRepository) FindActive(ctx context.Context, now time.Time) ([]Announcement, error) {
	filter := bson.M{
		"expires_at": bson.M{"$gt": now},
		"$or": bson.A{
			bson.M{"starts_at": bson.M{"$lte": now}},
			bson.M{"starts_at": nil}, // matches null and missing
		},
	}
	return r.find(ctx, filter)
}

// FindAll returns every announcement regardless of window, soonest to expire first.
func (r *AnnouncementRepository) FindAll(ctx context.Context) ([]Announcement, error) {
	return r.find(ctx, bson.M{})
}

func (r *AnnouncementRepository) find(ctx context.Context, filter bson.M) ([]Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "expires_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var announcements []Announcement
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

// Update applies the supplied fields to one announcement. The bool reports
// whether a document matched the id.
func (r *AnnouncementRepository) Update(ctx context.Context, id primitive.ObjectID, fields FieldUpdate) (bool, error) {
	set := bson.M{}
	if fields.Message != nil {
		set["message"] = *fields.Message
	}
	if fields.ExpiresAt != nil {
		set["expires_at"] = *fields.ExpiresAt
	}
	if fields.ClearStartsAt {
		set["starts_at"] = nil
	} else if fields.StartsAt != nil {
		set["starts_at"] = *fields.StartsAt
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// Delete removes one announcement. The bool reports whether a document existed.
func (r *AnnouncementRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
