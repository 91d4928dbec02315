package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/llehouerou/portrait/internal/app"
	"github.com/llehouerou/portrait/internal/config"
	"github.com/llehouerou/portrait/internal/errmsg"
	"github.com/llehouerou/portrait/internal/icons"
	"github.com/llehouerou/portrait/internal/logging"
	"github.com/llehouerou/portrait/internal/state"
)

func main() {
	configPath := flag.StringP("config", "c", "", "extra config file, loaded last")
	subject := flag.StringP("subject", "s", "", "profile to open (username or id)")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	noCache := flag.Bool("no-cache", false, "do not cache sampled photos on disk")
	flag.Parse()

	if err := run(*configPath, *subject, *logLevel, *noCache); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, subject, logLevel string, noCache bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if noCache {
		cfg.Gallery.NoCache = true
	}

	icons.Init(cfg.Icons)

	lc := cfg.GetLogConfig()
	logs, err := logging.New(logging.Config{
		FilePath:   lc.File,
		MaxSizeMB:  lc.MaxSizeMB,
		MaxBackups: lc.MaxBackups,
		MaxAgeDays: lc.MaxAgeDays,
		Level:      lc.Level,
	})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer func() { _ = logs.Close() }()

	log := logs.For("main")
	log.Info("starting", zap.String("subject", subject))

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer func() {
		if err := stateMgr.Close(); err != nil {
			log.Warn("close state", zap.Error(err))
		}
	}()

	m, err := app.New(cfg, stateMgr, app.Options{
		Subject: subject,
		Logging: logs,
	})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("program exited", zap.Error(err))
		return err
	}
	log.Info("exiting")
	return nil
}
