package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/silverbeer/swimcuttimes.com/internal/auth"
	"github.com/silverbeer/swimcuttimes.com/internal/config"
	"github.com/silverbeer/swimcuttimes.com/internal/infra"
	"github.com/silverbeer/swimcuttimes.com/internal/repository"
	pgrepo "github.com/silverbeer/swimcuttimes.com/internal/repository/pg"
	transport "github.com/silverbeer/swimcuttimes.com/internal/transport/http"
	uc "github.com/silverbeer/swimcuttimes.com/internal/usecase"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		cancel()
		log.Fatalf("db connect: %v", err)
	}
	defer cancel()
	defer pool.Close()

	var repo repository.Repo = pgrepo.NewPGRepo(pool)

	logger := infra.NewStdLogger("server")
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)

	qualify := uc.NewQualifyUsecase(repo)
	follows := uc.NewFollowUsecase(repo)
	invites := uc.NewInviteUsecase(repo)
	invites.TTL = cfg.InvitationTTL

	handlers := transport.NewHandlers(repo, qualify, follows, invites, tokens, logger)
	router := transport.NewRouter(handlers)

	sched := cron.New()
	jobLog := infra.NewStdLogger("jobs")
	if _, err := sched.AddFunc(cfg.ExpirySchedule, func() {
		jobCtx, jobCancel := context.WithTimeout(context.Background(), time.Minute)
		defer jobCancel()
		n, err := invites.ExpireStale(jobCtx)
		if err != nil {
			jobLog.Errorf("invitation expiry: %v", err)
			return
		}
		if n > 0 {
			jobLog.Infof("expired %d invitations", n)
		}
	}); err != nil {
		log.Fatalf("cron schedule %q: %v", cfg.ExpirySchedule, err)
	}
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	logger.Infof("listening on %s", cfg.Addr())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server: %v", err)
	}
}
