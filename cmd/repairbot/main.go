package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/repairbot/pkg/config"
	"github.com/umputun/repairbot/pkg/gateway"
	"github.com/umputun/repairbot/pkg/llm"
	"github.com/umputun/repairbot/pkg/pause"
	"github.com/umputun/repairbot/pkg/phone"
	"github.com/umputun/repairbot/pkg/repository"
	"github.com/umputun/repairbot/pkg/router"
	"github.com/umputun/repairbot/pkg/scheduler"
	"github.com/umputun/repairbot/pkg/settings"
	"github.com/umputun/repairbot/server"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	EnvFile string `long:"env-file" env:"ENV_FILE" default:".env" description:"optional dotenv file loaded before the config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug, os.Getenv("EVOLUTION_API_KEY"), os.Getenv("OPENROUTER_API_KEY"))

	log.Printf("[INFO] starting repairbot version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	if err := loadEnv(opts.EnvFile); err != nil {
		return err
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLog(opts.Debug, cfg.Gateway.APIKey, cfg.LLM.APIKey, cfg.Server.AuthPassword)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.DB.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	norm := phone.New(cfg.Bot.CountryCode)
	pauses := pause.New(repos.Pause, repos.Setting, pause.Config{Normalizer: norm, DefaultAIActive: cfg.Bot.IsAIActive()})
	settingsProvider := settings.NewProvider(repos.Setting, pauses, settings.Params{
		AdminNumber: cfg.Bot.AdminNumber,
		DebugNumber: cfg.Bot.DebugNumber,
		Normalizer:  norm,
	})

	llmClient := llm.New(cfg.LLM, cfg.Bot.Name)
	gw := gateway.New(cfg.Gateway, settingsProvider.AdminSender())

	engine := router.New(router.Deps{
		Classifier: llmClient,
		Extractor:  llmClient,
		Generator:  llmClient,
		Catalog:    repos.Catalog,
		History:    repos.History,
		Pauses:     pauses,
		Messenger:  gw,
		Settings:   settingsProvider,
	}, router.Config{
		BotName:           cfg.Bot.Name,
		CountryCode:       cfg.Bot.CountryCode,
		HandoffPauseDays:  cfg.Bot.HandoffPauseDays,
		HistoryLimit:      cfg.Bot.HistoryLimit,
		NotFoundPolicy:    cfg.Bot.NotFoundPolicy,
		SimilarLimit:      cfg.Bot.SimilarLimit,
		CapabilityTimeout: cfg.Bot.CapabilityTimeout,
	})

	sched := scheduler.NewScheduler(scheduler.Params{
		History:         repos.History,
		Connection:      gw,
		Retention:       cfg.Bot.HistoryRetention,
		CleanupInterval: cfg.Bot.JanitorInterval,
		CheckInterval:   cfg.Gateway.CheckInterval,
	})

	srv := server.New(server.Params{
		Config:   cfg,
		Router:   engine,
		Pauses:   pauses,
		Settings: settingsProvider,
		Catalog:  repos.Catalog,
		History:  repos.History,
		Status:   sched,
		Version:  revision,
		Debug:    opts.Debug,
	})

	if cfg.Gateway.WebhookURL != "" {
		// not fatal, the webhook may be configured on the gateway side already
		if err := gw.SetWebhook(ctx, cfg.Gateway.WebhookURL); err != nil {
			log.Printf("[WARN] failed to register webhook %s: %v", cfg.Gateway.WebhookURL, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sched.Start(gctx)
		<-gctx.Done()
		sched.Stop()
		return nil
	})
	g.Go(func() error {
		if err := srv.Run(gctx); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// loadEnv loads variables from the dotenv file if it exists, already set variables win
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	log.Printf("[DEBUG] environment loaded from %s", path)
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var nonEmpty []string
	for _, s := range secs {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) > 0 {
		logOpts = append(logOpts, lgr.Secret(nonEmpty...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
