package main

import (
	"context"
	"net/http"

	"github.com/ethantsaox/jobflow/config"
	"github.com/ethantsaox/jobflow/internal/domain"
	"github.com/ethantsaox/jobflow/internal/domain/progress"
	"github.com/ethantsaox/jobflow/internal/model"
	"github.com/ethantsaox/jobflow/internal/repository"
	"github.com/ethantsaox/jobflow/pkg/authenticator"
	"github.com/ethantsaox/jobflow/pkg/crypto"
	"github.com/ethantsaox/jobflow/pkg/kafka"
	"github.com/ethantsaox/jobflow/pkg/logger"
	"github.com/ethantsaox/jobflow/pkg/pubsub"
	"github.com/ethantsaox/jobflow/pkg/router"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
	"github.com/ethantsaox/jobflow/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context
	app *cli.App

	configs config.Configs

	userRepo        repository.UserRepository
	applicationRepo repository.JobApplicationRepository
	dailyRecordRepo repository.DailyRecordRepository
	progressRepo    repository.AchievementProgressRepository

	catalog      *progress.Catalog
	orchestrator *progress.Orchestrator

	passwordHasher crypto.PasswordHasher
	tokenEngine    authenticator.TokenEngine[model.AccessToken]
	publisher      pubsub.Publisher
	redisClient    xredis.Client

	authDomain        domain.AuthDomain
	userDomain        domain.UserDomain
	applicationDomain domain.ApplicationDomain
	progressDomain    domain.ProgressDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(cctx *cli.Context) {
	var err error
	s.configs, err = config.Load(cctx.String("config"))
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithConfigs(context.Background(), s.configs)
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(level))
}

func (s *srv) loadDatabase() {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                      s.configs.Database.ConnectionString(),
		DefaultStringSize:        256,
		DisableDatetimePrecision: true,
		DontSupportRenameIndex:   true,
		DontSupportRenameColumn:  true,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
}

func (s *srv) loadRedis() {
	if s.configs.Redis.Addr == "" {
		xcontext.Logger(s.ctx).Warnf("Redis is not configured, snapshot cache is disabled")
		return
	}

	redisClient, err := xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}

	s.redisClient = redisClient
}

func (s *srv) loadPublisher() {
	if s.configs.Kafka.Addr == "" {
		xcontext.Logger(s.ctx).Warnf("Kafka is not configured, unlock events are not published")
		return
	}

	publisher, err := kafka.NewPublisher("jobflow", []string{s.configs.Kafka.Addr})
	if err != nil {
		panic(err)
	}

	s.publisher = publisher
}

func (s *srv) loadAuth() {
	var err error
	s.passwordHasher, err = crypto.NewPasswordHasher(s.configs.Auth.PasswordHasher)
	if err != nil {
		panic(err)
	}

	s.tokenEngine = authenticator.NewTokenEngine[model.AccessToken](
		s.configs.Auth.TokenSecret, s.configs.Auth.AccessToken)
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.applicationRepo = repository.NewJobApplicationRepository()
	s.dailyRecordRepo = repository.NewDailyRecordRepository()
	s.progressRepo = repository.NewAchievementProgressRepository()
}

func (s *srv) loadProgressEngine() {
	s.catalog = progress.DefaultCatalog()
	s.orchestrator = progress.NewOrchestrator(
		s.catalog,
		s.userRepo,
		s.applicationRepo,
		s.dailyRecordRepo,
		s.progressRepo,
		s.publisher,
		s.redisClient,
	)
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo, s.passwordHasher, s.tokenEngine)
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.applicationDomain = domain.NewApplicationDomain(s.applicationRepo, s.orchestrator)
	s.progressDomain = domain.NewProgressDomain(
		s.catalog,
		s.userRepo,
		s.applicationRepo,
		s.dailyRecordRepo,
		s.progressRepo,
		s.redisClient,
	)
}
