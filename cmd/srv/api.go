package main

import (
	"fmt"
	"net/http"

	"github.com/ethantsaox/jobflow/internal/middleware"
	"github.com/ethantsaox/jobflow/pkg/router"
	"github.com/ethantsaox/jobflow/pkg/xcontext"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadPublisher()
	s.loadAuth()
	s.loadRepos()
	s.loadProgressEngine()
	s.loadDomains()
	s.loadRouter()

	handler := cors.New(cors.Options{
		AllowedOrigins:   s.configs.ApiServer.AllowCORS,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(s.router.Handler())

	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", s.configs.ApiServer.Host, s.configs.ApiServer.Port),
		Handler: handler,
	}

	xcontext.Logger(s.ctx).Infof("Starting server on port: %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.AddCloser(middleware.Logger())

	// Public API.
	router.POST(s.router, "/register", s.authDomain.Register)
	router.POST(s.router, "/login", s.authDomain.Login)

	// These following APIs need authentication.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.Authenticate(s.tokenEngine))
	{
		// User API
		router.GET(authRouter, "/getUser", s.userDomain.GetUser)
		router.POST(authRouter, "/updateDailyGoal", s.userDomain.UpdateDailyGoal)

		// Application API
		router.POST(authRouter, "/recordApplication", s.applicationDomain.RecordApplication)
		router.POST(authRouter, "/updateApplicationStatus", s.applicationDomain.UpdateApplicationStatus)
		router.GET(authRouter, "/getApplications", s.applicationDomain.GetApplications)

		// Achievement API
		router.GET(authRouter, "/getMyAchievements", s.progressDomain.GetMyAchievements)
		router.GET(authRouter, "/getAchievementProgress", s.progressDomain.GetAchievementProgress)

		// Streak API
		router.GET(authRouter, "/getStreakStats", s.progressDomain.GetStreakStats)
		router.GET(authRouter, "/getStreakCalendar", s.progressDomain.GetStreakCalendar)
		router.GET(authRouter, "/getMotivation", s.progressDomain.GetMotivation)
	}
}
