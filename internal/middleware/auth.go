package middleware

import (
	"context"
	"strings"

	"github.com/ethantsaox/jobflow/internal/model"
	"github.com/ethantsaox/jobflow/pkg/authenticator"
	"github.com/ethantsaox/jobflow/pkg/errorx"
	"github.com/ethantsaox/jobflow/pkg/router"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
)

// Authenticate verifies the bearer token and attaches the authenticated user
// id to the request context. Requests without a valid token are rejected.
func Authenticate(tokenEngine authenticator.TokenEngine[model.AccessToken]) router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		authorization := xcontext.HTTPRequest(ctx).Header.Get("Authorization")
		token, found := strings.CutPrefix(authorization, "Bearer ")
		if !found || token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		accessToken, err := tokenEngine.Verify(token)
		if err != nil {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
	}
}
