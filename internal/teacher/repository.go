package teacher

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TeacherRepository struct {
	collection *mongo.Collection
}

func NewTeacherRepository(db *mongo.Database) *TeacherRepository {
	return &TeacherRepository{collection: db.Collection("teachers")}
}

// FindByUsername looks up a teacher by its store identifier. Returns nil
// without an error when no record matches.
func (r *TeacherRepository) FindByUsername(ctx context.Context, username string) (*Teacher, error) {
	var t Teacher
	err := r.collection.FindOne(ctx, bson.M{"_id": username}).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// ListWithEmail returns every teacher that has an email address on record.
func (r *TeacherRepository) ListWithEmail(ctx context.Context) ([]Teacher, error) {
	filter := bson.M{"email": bson.M{"$exists": true, "$ne": ""}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var teachers []Teacher
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}
