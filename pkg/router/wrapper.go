package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/ethantsaox/jobflow/pkg/errorx"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
	"github.com/gin-gonic/gin"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = ginCtx.ShouldBindQuery(&req)
		case http.MethodPost:
			err = ginCtx.ShouldBindJSON(&req)
		default:
			err = errors.New("unsupported method")
		}
		if err != nil {
			ginCtx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := xcontext.WithHTTPRequest(router.base, ginCtx.Request)
		for _, before := range router.befores {
			// Closers still need a usable context when a middleware
			// rejects the request, so only adopt the derived one on
			// success.
			newCtx, err := before(ctx)
			if err != nil {
				writeError(ginCtx, err)
				runClosers(router, ctx, err)
				return
			}

			ctx = newCtx
		}

		resp, err := handler(ctx, &req)
		if err != nil {
			writeError(ginCtx, err)
		} else if resp != nil {
			ginCtx.JSON(http.StatusOK, resp)
		}

		runClosers(router, ctx, err)
	}
}

func runClosers(router *Router, ctx context.Context, err error) {
	for _, closer := range router.closers {
		closer(ctx, err)
	}
}

func writeError(ginCtx *gin.Context, err error) {
	var errx errorx.Error
	if !errors.As(err, &errx) {
		errx = errorx.Unknown
	}

	ginCtx.JSON(statusOf(errx.Code), gin.H{"error": errx.Message, "code": errx.Code})
}

func statusOf(code errorx.Code) int {
	switch code {
	case errorx.BadRequest, errorx.InvalidCatalog:
		return http.StatusBadRequest
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.AlreadyExists:
		return http.StatusConflict
	case errorx.TooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
