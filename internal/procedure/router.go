package procedure

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"storefront/internal/logger"
	"storefront/internal/validator"
	"storefront/pkg/apperrors"
)

// Router - дерево процедур с путями вида "products.byId"
type Router struct {
	validator  *validator.Validator
	procedures map[string]Procedure
}

func NewRouter(v *validator.Validator) *Router {
	return &Router{
		validator:  v,
		procedures: make(map[string]Procedure),
	}
}

// Handle регистрирует процедуру. Повтор пути - ошибка конфигурации, паникуем.
func (r *Router) Handle(name string, p Procedure) *Router {
	if name == "" || strings.Contains(name, ".") {
		panic(fmt.Sprintf("procedure: invalid procedure name %q", name))
	}
	r.add(name, p)
	return r
}

// Mount вкладывает процедуры child под префиксом prefix
func (r *Router) Mount(prefix string, child *Router) *Router {
	if prefix == "" {
		panic("procedure: empty namespace")
	}
	for path, p := range child.procedures {
		r.add(prefix+"."+path, p)
	}
	return r
}

func (r *Router) add(path string, p Procedure) {
	if p.invoke == nil {
		panic(fmt.Sprintf("procedure: %q has no handler", path))
	}
	if _, exists := r.procedures[path]; exists {
		panic(fmt.Sprintf("procedure: duplicate path %q", path))
	}
	r.procedures[path] = p
}

func (r *Router) Lookup(path string) (Procedure, bool) {
	p, ok := r.procedures[path]
	return p, ok
}

// Paths - все пути в алфавитном порядке
func (r *Router) Paths() []string {
	paths := make([]string, 0, len(r.procedures))
	for path := range r.procedures {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Call находит процедуру по пути и вызывает ее
func (r *Router) Call(ctx context.Context, path string, call Call, input json.RawMessage) (any, error) {
	p, ok := r.procedures[path]
	if !ok {
		return nil, apperrors.NotFound("procedure").WithDetails(map[string]string{"path": path})
	}
	return r.invoke(ctx, path, p, call, input)
}

func (r *Router) invoke(ctx context.Context, path string, p Procedure, call Call, input json.RawMessage) (any, error) {
	ctx = logger.WithProcedure(ctx, path)
	if call.Caller != nil {
		ctx = logger.WithUserID(ctx, call.Caller.UserID)
	}

	out, err := p.invoke(ctx, r.validator, call, input)
	if err != nil {
		logger.CtxDebug(ctx, "procedure failed", "kind", p.Kind, "error", err.Error())
		return nil, err
	}
	return out, nil
}
