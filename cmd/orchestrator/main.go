package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	calc "github.com/ERRORIK404/Keypad_Calculator/internal/calculator_application"
	orchestrator "github.com/ERRORIK404/Keypad_Calculator/internal/orchestrator_application"
	conf "github.com/ERRORIK404/Keypad_Calculator/pkg/config"
	tokens "github.com/ERRORIK404/Keypad_Calculator/pkg/tokenezation"
)

func main() {
	issue := flag.String("issue-token", "", "print a token for this login and exit")
	flag.Parse()

	cfg, err := conf.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *issue != "" {
		if !cfg.AuthEnabled() {
			log.Fatal("CALC_JWT_SECRET is not set")
		}
		token, err := tokens.GenerateToken(*issue, cfg.JWTSecret, cfg.TokenTTL)
		if err != nil {
			log.Fatalf("issue token: %v", err)
		}
		fmt.Println(token)
		return
	}

	logger, err := conf.NewLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	blobs, closeBlobs, err := calc.OpenBlobs(cfg)
	if err != nil {
		logger.Fatal("open store", zap.String("store", cfg.Store), zap.Error(err))
	}
	defer closeBlobs()

	srv := orchestrator.NewServer(orchestrator.Options{
		Blobs:        blobs,
		HistoryKey:   cfg.HistoryKey,
		HistoryLimit: cfg.HistoryLimit,
		JWTSecret:    cfg.JWTSecret,
		Log:          logger,
	})
	logger.Info("starting keypad service",
		zap.String("store", cfg.Store),
		zap.Bool("auth", cfg.AuthEnabled()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := orchestrator.RunServer(ctx, srv, cfg.GRPCAddr, cfg.HTTPAddr); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
