package repositories

import (
	"context"

	"orders-gateway/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DocumentRepository exposes the small set of driver operations the gateway
// forwards requests to. Documents stay untyped (bson.D) end to end; each
// method performs exactly one driver call.
type DocumentRepository interface {
	FindOne(ctx context.Context, collection string, filter interface{}) (bson.D, error)
	Find(ctx context.Context, collection string, filter interface{}, opts *options.FindOptions) ([]bson.D, error)
	Aggregate(ctx context.Context, collection string, pipeline interface{}) ([]bson.D, error)
	Count(ctx context.Context, collection string, filter interface{}) (int64, error)
	Ping(ctx context.Context) error
}

type documentRepository struct {
	provider *mongodb.Provider
}

// NewDocumentRepository wires the repository to the lazy connection
// provider. The client is obtained per call so configuration and
// connectivity failures surface on the request that hit them.
func NewDocumentRepository(provider *mongodb.Provider) DocumentRepository {
	return &documentRepository{provider: provider}
}

func (r *documentRepository) FindOne(ctx context.Context, collection string, filter interface{}) (bson.D, error) {
	client, err := r.provider.Get(ctx)
	if err != nil {
		return nil, err
	}

	var doc bson.D
	err = client.Collection(collection).FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *documentRepository) Find(ctx context.Context, collection string, filter interface{}, opts *options.FindOptions) ([]bson.D, error) {
	client, err := r.provider.Get(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := client.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) Aggregate(ctx context.Context, collection string, pipeline interface{}) ([]bson.D, error) {
	client, err := r.provider.Get(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := client.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) Count(ctx context.Context, collection string, filter interface{}) (int64, error) {
	client, err := r.provider.Get(ctx)
	if err != nil {
		return 0, err
	}
	return client.Collection(collection).CountDocuments(ctx, filter)
}

func (r *documentRepository) Ping(ctx context.Context) error {
	client, err := r.provider.Get(ctx)
	if err != nil {
		return err
	}
	return client.Ping(ctx)
}
