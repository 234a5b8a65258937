package handlers

import (
	"net/http"

	"orders-gateway/internal/apis/dtos"
	"orders-gateway/internal/services"
	"orders-gateway/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type QueryHandler struct {
	queryService services.QueryService
}

func NewQueryHandler(queryService services.QueryService) *QueryHandler {
	return &QueryHandler{queryService: queryService}
}

// bindExtJSON decodes the request body as extended JSON so filters and
// pipelines keep ObjectID and date values intact.
func bindExtJSON(c *gin.Context, req interface{}) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	return bson.UnmarshalExtJSON(body, false, req)
}

// Every failure, including a bad request body, comes back as a 500 with an
// error field; nothing propagates past the handler.
func respondError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, dtos.ErrorResponse{Error: err.Error()})
}

func respondDocument(c *gin.Context, doc bson.D) {
	if doc == nil {
		c.JSON(http.StatusNotFound, dtos.DocumentResponse{Document: nil})
		return
	}
	raw, err := utils.MarshalDocument(doc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.DocumentResponse{Document: raw})
}

func respondDocuments(c *gin.Context, docs []bson.D) {
	raws, err := utils.MarshalDocuments(docs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.DocumentsResponse{Documents: raws})
}

// Categories returns the category marker document from the default
// collection.
func (h *QueryHandler) Categories(c *gin.Context) {
	doc, err := h.queryService.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondDocument(c, doc)
}

func (h *QueryHandler) FindOne(c *gin.Context) {
	var req dtos.FindOneRequest
	if err := bindExtJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	doc, err := h.queryService.FindOne(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDocument(c, doc)
}

func (h *QueryHandler) Find(c *gin.Context) {
	var req dtos.FindRequest
	if err := bindExtJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	docs, err := h.queryService.Find(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDocuments(c, docs)
}

func (h *QueryHandler) Aggregate(c *gin.Context) {
	var req dtos.AggregateRequest
	if err := bindExtJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	docs, err := h.queryService.Aggregate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondDocuments(c, docs)
}

func (h *QueryHandler) Count(c *gin.Context) {
	var req dtos.CountRequest
	if err := bindExtJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	count, err := h.queryService.Count(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.CountResponse{Count: count})
}
