package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orders-gateway/internal/apis/dtos"
	"orders-gateway/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeQueryService struct {
	categoriesDoc bson.D
	categoriesErr error
	findOneDoc    bson.D
	findOneErr    error
	findDocs      []bson.D
	findErr       error
	aggDocs       []bson.D
	aggErr        error
	count         int64
	countErr      error
	pingErr       error

	lastFindOne *dtos.FindOneRequest
	lastFind    *dtos.FindRequest
	lastAgg     *dtos.AggregateRequest
	lastCount   *dtos.CountRequest
}

func (f *fakeQueryService) Categories(ctx context.Context) (bson.D, error) {
	return f.categoriesDoc, f.categoriesErr
}

func (f *fakeQueryService) FindOne(ctx context.Context, req *dtos.FindOneRequest) (bson.D, error) {
	f.lastFindOne = req
	return f.findOneDoc, f.findOneErr
}

func (f *fakeQueryService) Find(ctx context.Context, req *dtos.FindRequest) ([]bson.D, error) {
	f.lastFind = req
	return f.findDocs, f.findErr
}

func (f *fakeQueryService) Aggregate(ctx context.Context, req *dtos.AggregateRequest) ([]bson.D, error) {
	f.lastAgg = req
	return f.aggDocs, f.aggErr
}

func (f *fakeQueryService) Count(ctx context.Context, req *dtos.CountRequest) (int64, error) {
	f.lastCount = req
	return f.count, f.countErr
}

func (f *fakeQueryService) Ping(ctx context.Context) error {
	return f.pingErr
}

func newTestRouter(svc services.QueryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	queryHandler := NewQueryHandler(svc)
	router.GET("/api/categories", queryHandler.Categories)
	router.POST("/api/findOne", queryHandler.FindOne)
	router.POST("/api/find", queryHandler.Find)
	router.POST("/api/aggregate", queryHandler.Aggregate)
	router.POST("/api/count", queryHandler.Count)

	healthHandler := NewHealthHandler(svc)
	router.GET("/", healthHandler.Home)
	router.GET("/health", healthHandler.Health)

	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFindOneNotFound(t *testing.T) {
	router := newTestRouter(&fakeQueryService{})

	w := doRequest(router, http.MethodPost, "/api/findOne", `{"filter":{"name":"missing"}}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"document":null}`, w.Body.String())
}

func TestFindOnePreservesObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	svc := &fakeQueryService{findOneDoc: bson.D{
		{Key: "_id", Value: oid},
		{Key: "name", Value: "cake"},
	}}
	router := newTestRouter(svc)

	w := doRequest(router, http.MethodPost, "/api/findOne", `{"filter":{"name":"cake"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	expected := fmt.Sprintf(`{"document":{"_id":{"$oid":%q},"name":"cake"}}`, oid.Hex())
	require.JSONEq(t, expected, w.Body.String())
}

func TestFindEmptyResultIsAList(t *testing.T) {
	router := newTestRouter(&fakeQueryService{})

	w := doRequest(router, http.MethodPost, "/api/find", `{"filter":{"name":"nothing"}}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"documents":[]}`, w.Body.String())
}

func TestFindDecodesModifiers(t *testing.T) {
	svc := &fakeQueryService{}
	router := newTestRouter(svc)

	body := `{"collection":"orders","filter":{"status":"open"},"limit":2,"skip":1,"sort":{"name":1}}`
	w := doRequest(router, http.MethodPost, "/api/find", body)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastFind)
	require.Equal(t, "orders", svc.lastFind.Collection)
	require.Equal(t, int64(2), svc.lastFind.Limit)
	require.Equal(t, int64(1), svc.lastFind.Skip)
	require.Equal(t, bson.D{{Key: "status", Value: "open"}}, svc.lastFind.Filter)
	require.Equal(t, bson.D{{Key: "name", Value: int32(1)}}, svc.lastFind.Sort)
}

func TestFindFilterKeepsExtendedTypes(t *testing.T) {
	oid := primitive.NewObjectID()
	svc := &fakeQueryService{}
	router := newTestRouter(svc)

	body := fmt.Sprintf(`{"filter":{"_id":{"$oid":%q}}}`, oid.Hex())
	w := doRequest(router, http.MethodPost, "/api/find", body)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, bson.D{{Key: "_id", Value: oid}}, svc.lastFind.Filter)
}

func TestFindServiceErrorIsJSON(t *testing.T) {
	svc := &fakeQueryService{findErr: errors.New("unknown operator $frobnicate")}
	router := newTestRouter(svc)

	w := doRequest(router, http.MethodPost, "/api/find", `{}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"unknown operator $frobnicate"}`, w.Body.String())
}

func TestMalformedBodyIsJSONError(t *testing.T) {
	router := newTestRouter(&fakeQueryService{})

	w := doRequest(router, http.MethodPost, "/api/find", `not json at all`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp, "error")
	require.NotEmpty(t, resp["error"])
}

func TestAggregatePassesPipelineThrough(t *testing.T) {
	svc := &fakeQueryService{aggDocs: []bson.D{{{Key: "total", Value: int32(3)}}}}
	router := newTestRouter(svc)

	body := `{"collection":"orders","pipeline":[{"$match":{"status":"open"}},{"$count":"total"}]}`
	w := doRequest(router, http.MethodPost, "/api/aggregate", body)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"documents":[{"total":3}]}`, w.Body.String())
	require.Len(t, svc.lastAgg.Pipeline, 2)
}

func TestCount(t *testing.T) {
	svc := &fakeQueryService{count: 7}
	router := newTestRouter(svc)

	w := doRequest(router, http.MethodPost, "/api/count", `{"collection":"orders","filter":{}}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"count":7}`, w.Body.String())
	require.Equal(t, "orders", svc.lastCount.Collection)
}

func TestCategories(t *testing.T) {
	svc := &fakeQueryService{categoriesDoc: bson.D{
		{Key: "spec_id", Value: "categories"},
		{Key: "items", Value: bson.A{"cakes", "cookies"}},
	}}
	router := newTestRouter(svc)

	w := doRequest(router, http.MethodGet, "/api/categories", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"document":{"spec_id":"categories","items":["cakes","cookies"]}}`, w.Body.String())
}

func TestCategoriesNotFound(t *testing.T) {
	router := newTestRouter(&fakeQueryService{})

	w := doRequest(router, http.MethodGet, "/api/categories", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"document":null}`, w.Body.String())
}
