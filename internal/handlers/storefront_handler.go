package handlers

import (
	"encoding/json"
	"net/http"

	"storefront/internal/procedure"

	"github.com/gin-gonic/gin"
)

// StorefrontHandler - REST-алиасы поверх тех же процедур
type StorefrontHandler struct {
	*BaseHandler
	router *procedure.Router
}

func NewStorefrontHandler(base *BaseHandler, router *procedure.Router) *StorefrontHandler {
	return &StorefrontHandler{
		BaseHandler: base,
		router:      router,
	}
}

func (h *StorefrontHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/greeting", h.Greeting)

	products := r.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("", h.ListReviews)
		reviews.POST("", h.CreateReview)
	}
}

func (h *StorefrontHandler) Greeting(c *gin.Context) {
	fields := map[string]any{}
	if text, ok := c.GetQuery("text"); ok {
		fields["text"] = text
	}
	h.call(c, "greeting", encodeInput(fields), http.StatusOK)
}

func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	h.call(c, "products.list", encodeInput(map[string]any{"filter": c.Query("filter")}), http.StatusOK)
}

func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	h.call(c, "products.byId", encodeInput(map[string]any{"id": c.Param("id")}), http.StatusOK)
}

func (h *StorefrontHandler) ListReviews(c *gin.Context) {
	h.call(c, "reviews.list", nil, http.StatusOK)
}

func (h *StorefrontHandler) CreateReview(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.call(c, "reviews.create", body, http.StatusCreated)
}

func (h *StorefrontHandler) call(c *gin.Context, path string, input json.RawMessage, status int) {
	out, err := h.router.Call(c.Request.Context(), path, procedure.Call{
		DB:     h.GetDB(c),
		Caller: h.GetCaller(c),
	}, input)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(status, out)
}
