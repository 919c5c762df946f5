package commands

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/streadway/amqp"

	"botaniq/internal/app"
	"botaniq/internal/config"
	"botaniq/internal/database"
	"botaniq/internal/models"
	"botaniq/internal/services"
	"botaniq/internal/storage"
	"botaniq/pkg/rabbitmq"
)

// serveCmd runs the HTTP API until SIGINT or SIGTERM.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	// --- Configuration ---
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	// --- Database ---
	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}

	avatars, err := storage.NewAvatarStore(cfg.UploadDir)
	if err != nil {
		return err
	}

	deps := app.Dependencies{
		Config:  cfg,
		DB:      db,
		Avatars: avatars,
	}

	// --- RabbitMQ (optional) ---
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			return fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		defer mqClient.Close()

		deps.Events = mqClient
		deps.Checkers = []services.Checker{mqClient}

		log.Println("Starting RabbitMQ consumer for garden events...")
		if err := mqClient.ConsumeEvents(logEvent); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	} else {
		log.Println("RABBITMQ_URL not set, domain events are disabled")
	}

	fiberApp := app.New(deps)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- fiberApp.Listen(cfg.AppPort)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	log.Println("Shutting down server...")
	if err := fiberApp.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
	return nil
}

// logEvent records a domain event delivered through the garden_events queue.
func logEvent(msg amqp.Delivery) error {
	var event models.Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("malformed event body: %w", err)
	}
	log.Printf("Received %s event: user=%s entity=%s family=%q", event.Type, event.UserID, event.EntityID, event.Family)
	return nil
}
