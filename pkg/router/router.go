package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandlerFunc is a typed endpoint handler. The request is bound from the
// query string for GET and from the JSON body for POST.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It can derive a new context (for
// example to attach the authenticated user) or abort the request by
// returning an error.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the handler with the final context and the handler
// error, for logging and similar concerns.
type CloserFunc func(ctx context.Context, err error)

type Router struct {
	Inner gin.IRouter

	base    context.Context
	befores []MiddlewareFunc
	closers []CloserFunc
}

// New creates a root router. The base context must carry configs, logger,
// and database via xcontext; it is the parent of every request context.
func New(base context.Context) *Router {
	gin.SetMode(gin.ReleaseMode)
	return &Router{Inner: gin.New(), base: base}
}

// Branch returns a router sharing the underlying engine but with its own
// middleware chain.
func (r *Router) Branch() *Router {
	return &Router{
		Inner:   r.Inner,
		base:    r.base,
		befores: append([]MiddlewareFunc{}, r.befores...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(m MiddlewareFunc) {
	r.befores = append(r.befores, m)
}

func (r *Router) AddCloser(c CloserFunc) {
	r.closers = append(r.closers, c)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Handler() http.Handler {
	return r.Inner.(*gin.Engine)
}
