package resource

import (
	"caretray-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoRepository[T any] struct {
	collection *mongo.Collection
}

func NewMongoRepository[T any](db *mongo.Database, collectionName string) Repository[T] {
	return &mongoRepository[T]{
		collection: db.Collection(collectionName),
	}
}

func (r *mongoRepository[T]) ListAll(ctx context.Context) ([]T, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	items := make([]T, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return items, nil
}

func (r *mongoRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var item T
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &item, nil
}

func (r *mongoRepository[T]) Insert(ctx context.Context, model *T) (string, error) {
	result, err := r.collection.InsertOne(ctx, model)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBInsertDocument(errors.New("inserted ID is not an ObjectID"))
	}
	return objectID.Hex(), nil
}

// Update replaces the stored fields of one document. The _id and createdAt
// fields are stripped from the patch so a full-document update cannot move a
// document or rewrite its creation time.
func (r *mongoRepository[T]) Update(ctx context.Context, id string, model *T) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	raw, err := bson.Marshal(model)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	var patch bson.M
	if err := bson.Unmarshal(raw, &patch); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	delete(patch, "_id")
	delete(patch, "createdAt")
	patch["updatedAt"] = time.Now()

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": patch})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *mongoRepository[T]) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	patch := bson.M{"updatedAt": time.Now()}
	for key, value := range fields {
		patch[key] = value
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": patch})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *mongoRepository[T]) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
