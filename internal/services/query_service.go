package services

import (
	"context"
	"errors"

	"orders-gateway/internal/apis/dtos"
	"orders-gateway/internal/constants"
	"orders-gateway/internal/repositories"
	"orders-gateway/pkg/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QueryService applies request defaults, runs the search fallback, and
// forwards everything else to the repository unchanged.
type QueryService interface {
	Categories(ctx context.Context) (bson.D, error)
	FindOne(ctx context.Context, req *dtos.FindOneRequest) (bson.D, error)
	Find(ctx context.Context, req *dtos.FindRequest) ([]bson.D, error)
	Aggregate(ctx context.Context, req *dtos.AggregateRequest) ([]bson.D, error)
	Count(ctx context.Context, req *dtos.CountRequest) (int64, error)
	Ping(ctx context.Context) error
}

type queryService struct {
	repo repositories.DocumentRepository
}

func NewQueryService(repo repositories.DocumentRepository) QueryService {
	return &queryService{repo: repo}
}

func (s *queryService) Categories(ctx context.Context) (bson.D, error) {
	filter := bson.M{constants.CategoriesMarkerField: constants.CategoriesMarkerValue}
	doc, err := s.repo.FindOne(ctx, constants.DefaultCollection, filter)
	if err != nil {
		return nil, wrapQueryError("findOne", err)
	}
	return doc, nil
}

func (s *queryService) FindOne(ctx context.Context, req *dtos.FindOneRequest) (bson.D, error) {
	doc, err := s.repo.FindOne(ctx, collectionOrDefault(req.Collection), filterOrEmpty(req.Filter))
	if err != nil {
		return nil, wrapQueryError("findOne", err)
	}
	return doc, nil
}

func (s *queryService) Find(ctx context.Context, req *dtos.FindRequest) ([]bson.D, error) {
	opts := options.Find()
	if req.Skip > 0 {
		opts.SetSkip(req.Skip)
	}
	if req.Limit > 0 {
		opts.SetLimit(req.Limit)
	}
	if len(req.Sort) > 0 {
		opts.SetSort(req.Sort)
	}

	docs, err := s.repo.Find(ctx, collectionOrDefault(req.Collection), filterOrEmpty(req.Filter), opts)
	if err != nil {
		return nil, wrapQueryError("find", err)
	}
	return docs, nil
}

func (s *queryService) Aggregate(ctx context.Context, req *dtos.AggregateRequest) ([]bson.D, error) {
	collection := collectionOrDefault(req.Collection)
	pipeline := req.Pipeline
	if pipeline == nil {
		pipeline = []bson.D{}
	}

	if len(pipeline) > 0 {
		filter, ok, err := searchFallbackFilter(pipeline[0])
		if err != nil {
			return nil, &QueryError{Op: "aggregate", Err: err}
		}
		if ok {
			opts := options.Find().SetLimit(constants.SearchResultCap)
			docs, err := s.repo.Find(ctx, collection, filter, opts)
			if err != nil {
				return nil, wrapQueryError("find", err)
			}
			return docs, nil
		}
	}

	docs, err := s.repo.Aggregate(ctx, collection, pipeline)
	if err != nil {
		return nil, wrapQueryError("aggregate", err)
	}
	return docs, nil
}

func (s *queryService) Count(ctx context.Context, req *dtos.CountRequest) (int64, error) {
	count, err := s.repo.Count(ctx, collectionOrDefault(req.Collection), filterOrEmpty(req.Filter))
	if err != nil {
		return 0, wrapQueryError("countDocuments", err)
	}
	return count, nil
}

func (s *queryService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func collectionOrDefault(name string) string {
	if name == "" {
		return constants.DefaultCollection
	}
	return name
}

func filterOrEmpty(filter bson.D) bson.D {
	if filter == nil {
		return bson.D{}
	}
	return filter
}

// wrapQueryError keeps configuration and connectivity failures as their own
// kinds and tags everything else as a query failure.
func wrapQueryError(op string, err error) error {
	var cfgErr *mongodb.ConfigurationError
	var connErr *mongodb.ConnectionError
	if errors.As(err, &cfgErr) || errors.As(err, &connErr) {
		return err
	}
	return &QueryError{Op: op, Err: err}
}
