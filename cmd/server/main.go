package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/api"
	"github.com/cbodonnell/moralmaze/pkg/config"
	"github.com/cbodonnell/moralmaze/pkg/content/providers"
	"github.com/cbodonnell/moralmaze/pkg/game"
	"github.com/cbodonnell/moralmaze/pkg/log"
	"github.com/cbodonnell/moralmaze/pkg/network"
	"github.com/cbodonnell/moralmaze/pkg/queue"
	"github.com/cbodonnell/moralmaze/pkg/repositories"
	"github.com/cbodonnell/moralmaze/pkg/version"
	"github.com/cbodonnell/moralmaze/pkg/workers"
)

func main() {
	configPath := flag.String("config", "moralmaze.yaml", "Path to the YAML config file")
	port := flag.Int("port", 0, "HTTP port to listen on (overrides config)")
	logLevel := flag.String("log-level", "", "Log level (overrides config)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *port != 0 {
		settings.Server.Port = *port
	}
	if *logLevel != "" {
		settings.Server.LogLevel = *logLevel
	}

	parsedLogLevel, err := log.ParseLogLevel(settings.Server.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting server version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repository, err := repositories.Open(ctx, settings.Save.URL, settings.Save.MigrationsDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to open save store: %v", err))
	}
	defer repository.Close(context.Background())

	provider, err := providers.Select(providers.SelectOptions{
		Kind:       settings.AI.Provider,
		APIKey:     settings.AI.APIKey,
		BaseURL:    settings.AI.BaseURL,
		Model:      settings.AI.Model,
		Timeout:    settings.AI.Timeout,
		MaxRetries: settings.AI.MaxRetries,
	})
	if err != nil {
		log.Warn("Falling back to local content: %v", err)
		provider = providers.NewLocalProvider(nil)
	}
	log.Info("Content provider: %s", provider.Name())

	eventQueue := queue.NewInMemoryQueue()
	session, err := game.NewSessionController(ctx, game.NewSessionControllerOptions{
		Settings: game.Settings{
			Width:       settings.Maze.Width,
			Height:      settings.Maze.Height,
			Seed:        settings.Maze.Seed,
			StartAge:    settings.Age.Start,
			GoalAge:     settings.Age.Goal,
			DissolveCap: settings.Maze.DissolveCap,
			ProfileID:   settings.Save.Profile,
		},
		Repository: repository,
		Provider:   provider,
		EventQueue: eventQueue,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to start session: %v", err))
	}

	stream := network.NewStateStream(network.NewStateStreamOptions{
		AllowedOrigin: settings.Server.AllowedOrigin,
	})

	broadcastWorker := workers.NewBroadcastMessageWorker(workers.NewBroadcastMessageWorkerOptions{
		Broadcaster: stream,
		EventQueue:  eventQueue,
	})
	go broadcastWorker.Start(ctx)

	checkpointWorker := workers.NewCheckpointWorker(workers.NewCheckpointWorkerOptions{
		Session:  session,
		Interval: settings.Server.CheckpointInterval,
	})
	go checkpointWorker.Start(ctx)

	apiServer := api.NewAPIServer(api.NewAPIServerOptions{
		Port:          settings.Server.Port,
		Session:       session,
		Stream:        stream,
		AllowedOrigin: settings.Server.AllowedOrigin,
	})
	go apiServer.Start()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop API server: %v", err)
	}
	session.Close(shutdownCtx)
}
