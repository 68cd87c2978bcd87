package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cbodonnell/grouphell/pkg/config"
	"github.com/cbodonnell/grouphell/pkg/game"
	"github.com/cbodonnell/grouphell/pkg/log"
	"github.com/cbodonnell/grouphell/pkg/narrator"
	"github.com/cbodonnell/grouphell/pkg/random"
	"github.com/cbodonnell/grouphell/pkg/repositories"
	"github.com/cbodonnell/grouphell/pkg/version"
	"github.com/cbodonnell/grouphell/pkg/workers"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "grouphell: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	// stdout belongs to the narrator
	logger := log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Starting grouphell version %s (%s)", version.Get(), cfg)
	log.Debug("Log level set to %s", logger.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// a second interrupt kills the process
	context.AfterFunc(ctx, stop)

	seed := cfg.Seed
	if seed == 0 {
		seed, err = random.NewSeed()
		if err != nil {
			return err
		}
	}
	log.Info("Using seed %d", seed)

	tag, err := cfg.LanguageTag()
	if err != nil {
		return err
	}
	console := narrator.NewConsole(narrator.NewConsoleOptions{
		In:       os.Stdin,
		Out:      os.Stdout,
		Language: tag,
	})

	var saveRecordChan chan workers.SaveRecordRequest
	var saveRecordWorker *workers.SaveRecordWorker
	if cfg.ArchiveEnabled() {
		repository, err := repositories.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer repository.Close(context.Background())

		saveRecordChan = make(chan workers.SaveRecordRequest, cfg.ArchiveBuffer)
		saveRecordWorker = workers.NewSaveRecordWorker(workers.NewSaveRecordWorkerOptions{
			Repository:     repository,
			SaveRecordChan: saveRecordChan,
		})
		// the worker outlives ctx so records queued before an interrupt are kept
		go saveRecordWorker.Start(context.Background())
	}

	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		Narrator:       console,
		Randomizer:     random.NewSource(seed),
		SaveRecordChan: saveRecordChan,
	})

	log.Info("Starting game manager")
	gameErr := gameManager.Start(ctx)

	if saveRecordWorker != nil {
		close(saveRecordChan)
		<-saveRecordWorker.Done()
		log.Debug("Archive worker drained")
	}

	return gameErr
}
