package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ethantsaox/jobflow/internal/entity"
	"github.com/ethantsaox/jobflow/internal/model"
	"github.com/ethantsaox/jobflow/internal/repository"
	"github.com/ethantsaox/jobflow/pkg/authenticator"
	"github.com/ethantsaox/jobflow/pkg/crypto"
	"github.com/ethantsaox/jobflow/pkg/errorx"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type authDomain struct {
	userRepo       repository.UserRepository
	passwordHasher crypto.PasswordHasher
	tokenEngine    authenticator.TokenEngine[model.AccessToken]
}

func NewAuthDomain(
	userRepo repository.UserRepository,
	passwordHasher crypto.PasswordHasher,
	tokenEngine authenticator.TokenEngine[model.AccessToken],
) *authDomain {
	return &authDomain{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		tokenEngine:    tokenEngine,
	}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Email and password are required")
	}

	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid timezone %s", req.Timezone)
		}
	}

	_, err := d.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "The email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	hashed, err := d.passwordHasher.Hash(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		Name:           req.Name,
		Email:          email,
		HashedPassword: hashed,
		DailyGoal:      xcontext.Configs(ctx).Progress.DefaultDailyGoal,
		Timezone:       req.Timezone,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RegisterResponse{}, nil
}

func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := d.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.passwordHasher.Compare(user.HashedPassword, req.Password); err != nil {
		if errors.Is(err, crypto.ErrMismatchedPassword) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid email or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot compare password: %v", err)
		return nil, errorx.Unknown
	}

	token, err := d.tokenEngine.Generate(user.ID, model.AccessToken{
		ID:    user.ID,
		Email: user.Email,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{AccessToken: token}, nil
}
