package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/chronos-tachyon/bytehuff/internal/config"
)

func main() {
	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		fmt.Println("ERROR: ", err)
		os.Exit(1)
	}

	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logrus.Errorf("%s failed: %s", cfg.Command, err)
		stop()
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) {
	switch {
	case cfg.CLI.Debug:
		logrus.SetLevel(logrus.DebugLevel)
		logrus.Debug("debug mode enabled")
	case cfg.CLI.Quiet:
		logrus.SetLevel(logrus.WarnLevel)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logrus.WithField("cmd", cfg.Command)

	switch cfg.Command {
	case config.CommandCompress:
		return runCompress(ctx, cfg, log)
	case config.CommandDecompress:
		return runDecompress(cfg, log)
	case config.CommandStat:
		return runStat(ctx, cfg, log)
	case config.CommandVerify:
		return runVerify(ctx, cfg, log)
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
}
