package cfg

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type ObservabilityConfig struct {
	Enabled      bool
	OTLPEndpoint string
	ServiceName  string
}

// RulesConfig seeds the planning rules document on startup. The engine
// itself never reads these; rules are always passed explicitly per
// evaluation.
type RulesConfig struct {
	MinTurnaroundMinutes int
	BufferMinutes        int
	MaxDailyCycles       int
	MaxCrewDutyMinutes   int
}

type Config struct {
	AppEnv          string
	AppPort         string
	RedisConfig     RedisConfig
	Observability   ObservabilityConfig
	Rules           RulesConfig
	CacheTTLMinutes int
}

func Load() (*Config, error) {
	var errs []error

	err := godotenv.Load()
	if err != nil {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)
	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)
	redisPassword := os.Getenv("REDIS_PASSWORD")

	cacheTTLMinutes := intEnv("CACHE_TTL_MINUTES", 5, &errs)

	otelEnabled := os.Getenv("OTEL_ENABLED") == "true"
	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "airops"
	}
	if otelEnabled && otelEndpoint == "" {
		errs = append(errs, errors.New("missing env: OTEL_EXPORTER_OTLP_ENDPOINT"))
	}

	rules := RulesConfig{
		MinTurnaroundMinutes: intEnv("RULES_MIN_TURNAROUND_MINUTES", 30, &errs),
		BufferMinutes:        intEnv("RULES_BUFFER_MINUTES", 10, &errs),
		MaxDailyCycles:       intEnv("RULES_MAX_DAILY_CYCLES", 8, &errs),
		MaxCrewDutyMinutes:   intEnv("RULES_MAX_CREW_DUTY_MINUTES", 780, &errs),
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		RedisConfig: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: redisPassword,
		},
		Observability: ObservabilityConfig{
			Enabled:      otelEnabled,
			OTLPEndpoint: otelEndpoint,
			ServiceName:  serviceName,
		},
		Rules:           rules,
		CacheTTLMinutes: cacheTTLMinutes,
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func intEnv(key string, fallback int, errs *[]error) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return parsed
}
