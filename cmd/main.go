package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goserg/puzzleboard/internal/config"
	"github.com/goserg/puzzleboard/internal/logger"
	"github.com/goserg/puzzleboard/internal/metrics"
	"github.com/goserg/puzzleboard/internal/service"
	"github.com/goserg/puzzleboard/internal/storage/sqlite"
	"github.com/goserg/puzzleboard/internal/tgbot"
	"github.com/goserg/puzzleboard/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var serverConfigPath, botConfigPath string
	flag.StringVar(&serverConfigPath, "server-config", "configs/server.toml", "path to server config")
	flag.StringVar(&botConfigPath, "bot-config", "configs/bot.toml", "path to bot config, empty disables the bot")
	flag.Parse()

	cfg, err := config.New(serverConfigPath, botConfigPath)
	if err != nil {
		return err
	}
	l := logger.New(cfg.Server.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(l, cfg.Server)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			l.WithError(err).Error("storage close")
		}
	}()

	svc := service.New(l, store, store)
	m := metrics.New()
	svc.OnSubmit(m.ObserveSubmit)

	if cfg.TgBot.Enabled {
		bot, err := tgbot.New(l, svc, store, m, cfg.TgBot, cfg.Server.Debug)
		if err != nil {
			return err
		}
		svc.OnSubmit(bot.NotifySubmit)
		go bot.Run(ctx)
		defer bot.Stop()
	}

	server, err := web.New(l, svc, m, cfg.Server)
	if err != nil {
		return err
	}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve()
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}
	l.Info("shutting down")
	return server.Shutdown()
}
