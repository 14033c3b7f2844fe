package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

type Config struct {
	Port          string
	PublicBaseURL string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	RedisHost string
	RedisPort string

	KafkaBrokers []string
	EventsTopic  string
	ConsumerID   string

	POSSvcURL       string
	AnalyticsSvcURL string
}

// Load reads an optional .env file and then the process environment.
// Variables already present in the environment win over the file.
func Load(defaultPort string) *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN: could not read .env file: %v", err)
	}

	return &Config{
		Port:          GetEnv("PORT", defaultPort),
		PublicBaseURL: GetEnv("PUBLIC_BASE_URL", "http://localhost:8080"),

		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME", "orders"),
		DBUser:     GetEnv("DB_USER", "postgres"),
		DBPassword: GetEnv("DB_PASSWORD", "postgres"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "disable"),

		RedisHost: GetEnv("REDIS_HOST", "localhost"),
		RedisPort: GetEnv("REDIS_PORT", "6379"),

		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKER")),
		EventsTopic:  GetEnv("KAFKA_EVENTS_TOPIC", "pos-events"),
		ConsumerID:   GetEnv("KAFKA_GROUP_ID", "agg-svc"),

		POSSvcURL:       GetEnv("POS_SVC_URL", "http://localhost:8081"),
		AnalyticsSvcURL: GetEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
	}
}

func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=" + c.DBSSLMode
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func MustInitPostgres(cfg *Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(GetEnvInt("DB_MAX_OPEN_CONNS", 25))
	db.SetMaxIdleConns(GetEnvInt("DB_MAX_IDLE_CONNS", 5))
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg *Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.EventsTopic,
		GroupID: cfg.ConsumerID,
	})
}

// NewKafkaWriter returns a synchronous writer that flushes almost at once.
// The default one second batch window would hold every request open.
func NewKafkaWriter(cfg *Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.EventsTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           2 * time.Second,
		MaxAttempts:            3,
		AllowAutoTopicCreation: true,
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("WARN: %s=%q is not a number, using %d", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) String() string {
	return fmt.Sprintf("port=%s db=%s:%s/%s redis=%s kafka=%v topic=%s",
		c.Port, c.DBHost, c.DBPort, c.DBName, c.RedisAddr(), c.KafkaBrokers, c.EventsTopic)
}
