package main

import (
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/N1ghtHunter/portfolio-backend/api"
	"github.com/N1ghtHunter/portfolio-backend/config"
	"github.com/N1ghtHunter/portfolio-backend/database"
	"github.com/N1ghtHunter/portfolio-backend/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msgf("No .env file loaded: %v", err)
	}

	c := config.New()

	// An empty token would let a request with no Authorization header pass
	// the exact-match guard.
	if config.GetString(c, "AUTH_TOKEN", "") == "" {
		log.Fatal().Msg("AUTH_TOKEN must be set")
	}

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetString(c, "DB_HOST", "localhost"),
		config.GetString(c, "DB_USER", "postgres"),
		config.GetString(c, "DB_PASSWORD", ""),
		config.GetString(c, "DB_NAME", "portfolio"),
		config.GetString(c, "DB_PORT", "5432"),
		config.GetString(c, "DB_SSLMODE", "disable"),
	)

	gormLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Fatal().Msgf("Error connecting to database: %v", err)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		log.Fatal().Msgf("Error testing database connection: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Msgf("Error migrating database: %v", err)
	}

	store := storage.New(config.GetString(c, "UPLOAD_DIR", "public/uploads"))
	if err := store.EnsureDirectories(); err != nil {
		log.Fatal().Msgf("Error creating upload directories: %v", err)
	}

	currentDB := database.New(db)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, store)
	if err != nil {
		log.Fatal().Msgf("Error initializing server: %v", err)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
