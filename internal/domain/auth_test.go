package domain

import (
	"context"
	"testing"

	"github.com/ethantsaox/jobflow/internal/model"
	"github.com/ethantsaox/jobflow/internal/repository"
	"github.com/ethantsaox/jobflow/pkg/authenticator"
	"github.com/ethantsaox/jobflow/pkg/crypto"
	"github.com/ethantsaox/jobflow/pkg/errorx"
	"github.com/ethantsaox/jobflow/pkg/testutil"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestAuthDomain(t *testing.T, ctx context.Context) AuthDomain {
	cfg := xcontext.Configs(ctx)

	hasher, err := crypto.NewPasswordHasher(cfg.Auth.PasswordHasher)
	require.NoError(t, err)

	return NewAuthDomain(
		repository.NewUserRepository(),
		hasher,
		authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.TokenSecret, cfg.Auth.AccessToken),
	)
}

func Test_authDomain_RegisterAndLogin(t *testing.T) {
	ctx := testutil.MockContext()
	authDomain := newTestAuthDomain(t, ctx)

	_, err := authDomain.Register(ctx, &model.RegisterRequest{
		Name:     "ada",
		Email:    "Ada@Example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	// Email comparison is case insensitive.
	resp, err := authDomain.Login(ctx, &model.LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	cfg := xcontext.Configs(ctx)
	engine := authenticator.NewTokenEngine[model.AccessToken](
		cfg.Auth.TokenSecret, cfg.Auth.AccessToken)
	token, err := engine.Verify(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", token.Email)
}

func Test_authDomain_RegisterDuplicatedEmail(t *testing.T) {
	ctx := testutil.MockContext()
	authDomain := newTestAuthDomain(t, ctx)

	req := &model.RegisterRequest{Email: "dup@example.com", Password: "pw"}
	_, err := authDomain.Register(ctx, req)
	require.NoError(t, err)

	_, err = authDomain.Register(ctx, req)
	require.Error(t, err)
	require.Equal(t, errorx.New(errorx.AlreadyExists, "The email is already registered"), err)
}

func Test_authDomain_LoginWrongPassword(t *testing.T) {
	ctx := testutil.MockContext()
	authDomain := newTestAuthDomain(t, ctx)

	_, err := authDomain.Register(ctx, &model.RegisterRequest{
		Email:    "bob@example.com",
		Password: "correct",
	})
	require.NoError(t, err)

	_, err = authDomain.Login(ctx, &model.LoginRequest{
		Email:    "bob@example.com",
		Password: "wrong",
	})
	require.Error(t, err)

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
}

func Test_authDomain_RegisterInvalidTimezone(t *testing.T) {
	ctx := testutil.MockContext()
	authDomain := newTestAuthDomain(t, ctx)

	_, err := authDomain.Register(ctx, &model.RegisterRequest{
		Email:    "tz@example.com",
		Password: "pw",
		Timezone: "Mars/Olympus",
	})
	require.Error(t, err)
}
