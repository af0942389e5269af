package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file named by FITNOVA_ENV (or .env by default), then
// the matching .secret sidecar if it exists. Everything else is read
// lazily from the environment.
func Load() error {
	envFile := os.Getenv("FITNOVA_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func AnthropicAPIKey() string {
	return os.Getenv("ANTHROPIC_API_KEY")
}

// LLMProvider defaults to "openai".
// Valid values: openai, anthropic, mock, none
func LLMProvider() string {
	p := os.Getenv("LLM_PROVIDER")
	if p == "" {
		return "openai"
	}
	return p
}

// LLMAPIKey returns the API key for the configured LLM provider.
func LLMAPIKey() string {
	switch LLMProvider() {
	case "anthropic":
		return AnthropicAPIKey()
	case "mock", "none":
		return ""
	default:
		return OpenAIAPIKey()
	}
}

// EmbeddingProvider defaults to "openai".
// Valid values: openai, mock, none
func EmbeddingProvider() string {
	p := os.Getenv("EMBEDDING_PROVIDER")
	if p == "" {
		return "openai"
	}
	return p
}

func EmbeddingAPIKey() string {
	switch EmbeddingProvider() {
	case "mock", "none":
		return ""
	default:
		return OpenAIAPIKey()
	}
}

func MigrationsPath() string {
	p := os.Getenv("MIGRATIONS_PATH")
	if p == "" {
		return "migrations"
	}
	return p
}

// RateLimitRPS defaults to 100.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst defaults to 20.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns debug, info, warn or error. Defaults to info.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}

// AdaptationInterval is how often the adaptation scheduler runs. Accepts
// Go durations ("30m", "1h"); defaults to one hour.
func AdaptationInterval() time.Duration {
	d, err := time.ParseDuration(os.Getenv("ADAPTATION_INTERVAL"))
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// AdaptationEnabled turns the background scheduler off when set to "false".
func AdaptationEnabled() bool {
	return os.Getenv("ADAPTATION_ENABLED") != "false"
}

// Timezone is the IANA zone used to decide what "today" means. An unknown
// zone falls back to UTC.
func Timezone() *time.Location {
	name := os.Getenv("TIMEZONE")
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
