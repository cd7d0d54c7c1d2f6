package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/redis/go-redis/v9"

	"github.com/HCapraz/qa-interview-prep/internal/config"
)

// DB is the global database connection
var DB *sql.DB

// RedisClient is the global Redis client
var RedisClient *redis.Client

// InitDatabases opens the MySQL pool and the Redis client, waiting for both
// to come up. MySQL being unreachable is fatal; Redis is optional and only
// logged, since the app degrades without it.
func InitDatabases(cfg *config.Config) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4",
		cfg.MySQLUser, cfg.MySQLPassword, cfg.MySQLHost, cfg.MySQLPort, cfg.MySQLDatabase)

	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}

	// Test the connection with retries
	maxRetries := 10
	for i := 1; i <= maxRetries; i++ {
		err = DB.Ping()
		if err == nil {
			break
		}
		log.Printf("Waiting for MySQL... (%d/%d)", i, maxRetries)
		time.Sleep(3 * time.Second)
	}

	if err != nil {
		log.Fatalf("Failed to connect to MySQL after %d attempts: %v", maxRetries, err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)

	log.Println("Successfully connected to MySQL database")

	redisAddr := fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort)
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx := context.Background()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Redis not reachable at %s (duplicate-submit guard disabled): %v", redisAddr, err)
		return
	}

	log.Println("Successfully connected to Redis")
}
