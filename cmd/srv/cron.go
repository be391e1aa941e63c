package main

import (
	"github.com/ethantsaox/jobflow/internal/domain/cron"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadPublisher()
	s.loadRepos()
	s.loadProgressEngine()

	manager := cron.NewCronJobManager()
	manager.Register(cron.NewReevaluateProgressCronJob(s.dailyRecordRepo, s.orchestrator))
	manager.Start(s.ctx)

	return nil
}
