// Command snowkit serves the database toolkit over MCP on stdio.
//
// Configuration comes from the environment:
//
//	SNOWKIT_DB_DRIVER    database/sql driver name (default "sqlite3")
//	SNOWKIT_DB_DSN       data source name (required)
//	SNOWKIT_REDIS_URL    optional Redis URL for the shared schema cache
//	SNOWKIT_OTEL_ENDPOINT optional OTLP gRPC endpoint for tracing
//
// Logging is configured through config/config.yaml under the project
// root, with the active tier selected by the ENV environment variable.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	_ "github.com/mattn/go-sqlite3"

	"github.com/snowkit/snowkit"
	"github.com/snowkit/snowkit/logging"
	"github.com/snowkit/snowkit/telemetry"
	"github.com/snowkit/snowkit/toolkit"
	"github.com/snowkit/snowkit/warehouse"
)

const serverName = "snowkit"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snowkit: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := logging.InitializeRootLogger(); err != nil {
		return fmt.Errorf("configuring root logger: %w", err)
	}
	logger, err := logging.GetLogger(serverName)
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	log := logger.WithComponent("server")

	driver := envOr("SNOWKIT_DB_DRIVER", "sqlite3")
	dsn := os.Getenv("SNOWKIT_DB_DSN")
	if dsn == "" {
		return fmt.Errorf("SNOWKIT_DB_DSN is not set")
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	log.Info("database connected", map[string]interface{}{
		"driver": driver,
	})

	var cache warehouse.Cache
	if redisURL := os.Getenv("SNOWKIT_REDIS_URL"); redisURL != "" {
		redisCache, err := warehouse.NewRedisCache(redisURL, serverName)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer redisCache.Close()
		cache = redisCache
		log.Info("using redis schema cache", nil)
	} else {
		cache = warehouse.NewMemoryCache()
	}

	var tel telemetry.Telemetry = &telemetry.NoOpTelemetry{}
	if endpoint := os.Getenv("SNOWKIT_OTEL_ENDPOINT"); endpoint != "" {
		provider, err := telemetry.NewOTelProvider(serverName, endpoint)
		if err != nil {
			return fmt.Errorf("starting telemetry: %w", err)
		}
		defer func() { _ = provider.Shutdown(context.Background()) }()
		tel = provider
		log.Info("telemetry enabled", map[string]interface{}{
			"endpoint": endpoint,
		})
	}

	db := warehouse.NewDB(sqlDB, warehouse.DialectForDriver(driver), &warehouse.Options{
		Cache:  cache,
		Logger: logger.WithComponent("warehouse"),
	})

	s := server.NewMCPServer(
		serverName, snowkit.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithLogging(),
	)
	toolkit.RegisterTools(s, &toolkit.Dependencies{
		DB:        db,
		Logger:    logger.WithComponent("toolkit"),
		Telemetry: tel,
	})

	log.Info("serving on stdio", map[string]interface{}{
		"dialect": db.Dialect().Name(),
	})
	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
