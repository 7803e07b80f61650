package handlers

import (
	"encoding/json"
	"net/http"

	"storefront/internal/procedure"
	"storefront/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ProcedureHandler отдает дерево процедур по HTTP в стиле tRPC:
// GET /trpc/<path>?input=<json> для query, POST /trpc/<path> с JSON-телом для mutation.
type ProcedureHandler struct {
	*BaseHandler
	router *procedure.Router
}

func NewProcedureHandler(base *BaseHandler, router *procedure.Router) *ProcedureHandler {
	return &ProcedureHandler{
		BaseHandler: base,
		router:      router,
	}
}

func (h *ProcedureHandler) RegisterRoutes(r *gin.RouterGroup) {
	trpc := r.Group("/trpc")
	{
		trpc.GET("", h.Catalogue)
		trpc.GET("/:path", h.Query)
		trpc.POST("/:path", h.Mutate)
	}
}

type resultEnvelope struct {
	Result resultData `json:"result"`
}

type resultData struct {
	Data any `json:"data"`
}

// ProcedureInfo - элемент каталога процедур
type ProcedureInfo struct {
	Path      string         `json:"path"`
	Kind      procedure.Kind `json:"kind"`
	Protected bool           `json:"protected"`
}

func (h *ProcedureHandler) Catalogue(c *gin.Context) {
	paths := h.router.Paths()
	items := make([]ProcedureInfo, 0, len(paths))
	for _, path := range paths {
		p, _ := h.router.Lookup(path)
		items = append(items, ProcedureInfo{Path: path, Kind: p.Kind, Protected: p.Protected})
	}
	c.JSON(http.StatusOK, gin.H{"procedures": items})
}

func (h *ProcedureHandler) Query(c *gin.Context) {
	var input json.RawMessage
	if raw, ok := c.GetQuery("input"); ok {
		input = json.RawMessage(raw)
	}
	h.serve(c, procedure.KindQuery, input)
}

func (h *ProcedureHandler) Mutate(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.serve(c, procedure.KindMutation, body)
}

func (h *ProcedureHandler) serve(c *gin.Context, kind procedure.Kind, input json.RawMessage) {
	path := c.Param("path")

	p, ok := h.router.Lookup(path)
	if !ok {
		h.HandleServiceError(c, apperrors.NotFound("procedure").WithDetails(map[string]string{"path": path}))
		return
	}
	if p.Kind != kind {
		h.HandleServiceError(c, apperrors.NewMethodNotSupportedError(
			"Procedure "+path+" is a "+string(p.Kind)+" and cannot be called with "+c.Request.Method,
		))
		return
	}

	out, err := h.router.Call(c.Request.Context(), path, procedure.Call{
		DB:     h.GetDB(c),
		Caller: h.GetCaller(c),
	}, input)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resultEnvelope{Result: resultData{Data: out}})
}
