package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kailas-cloud/padex/internal/db"
	"github.com/kailas-cloud/padex/internal/domain"
	"github.com/kailas-cloud/padex/internal/domain/catalog/filter"
)

// Find returns matching documents in server-native order.
func (s *Store) Find(ctx context.Context, collection string, f filter.Expression) ([]db.Document, error) {
	cursor, err := s.collection(collection).Find(ctx, buildQuery(f))
	if err != nil {
		return nil, opErr(db.OpFind, err)
	}
	defer cursor.Close(ctx)

	docs := []db.Document{}
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, opErr(db.OpFind, err)
		}
		docs = append(docs, toDocument(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, opErr(db.OpFind, err)
	}
	return docs, nil
}

// FindByID returns a single document by its hex ObjectID.
func (s *Store) FindByID(ctx context.Context, collection, id string) (db.Document, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return db.Document{}, fmt.Errorf("%q: %w", id, domain.ErrInvalidID)
	}

	var raw bson.M
	err = s.collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return db.Document{}, domain.ErrNotFound
	}
	if err != nil {
		return db.Document{}, opErr(db.OpFindByID, err)
	}
	return toDocument(raw), nil
}

// Insert stores the fields as a new document and returns the assigned
// ObjectID in hex form.
func (s *Store) Insert(ctx context.Context, collection string, fields map[string]any) (string, error) {
	res, err := s.collection(collection).InsertOne(ctx, bson.M(fields))
	if err != nil {
		return "", opErr(db.OpInsert, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

// Count returns the number of documents in the collection.
func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	n, err := s.collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, opErr(db.OpCount, err)
	}
	return n, nil
}

// ListCollections returns up to limit collection names.
func (s *Store) ListCollections(ctx context.Context, limit int) ([]string, error) {
	names, err := s.client.Database(s.dbName).ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, opErr(db.OpListCollections, err)
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// toDocument strips the native _id into Document.ID and stringifies any
// nested ObjectID values so documents leave the gateway JSON-clean.
func toDocument(raw bson.M) db.Document {
	doc := db.Document{Fields: make(map[string]any, len(raw))}
	for k, v := range raw {
		if k == "_id" {
			if oid, ok := v.(primitive.ObjectID); ok {
				doc.ID = oid.Hex()
			} else {
				doc.ID = fmt.Sprintf("%v", v)
			}
			continue
		}
		doc.Fields[k] = normalize(v)
	}
	return doc
}

func normalize(v any) any {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	case bson.M:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}
		return out
	default:
		return v
	}
}
