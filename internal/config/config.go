package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cypherlabdev/match-predictor-service/internal/analytics"
	"github.com/cypherlabdev/match-predictor-service/internal/models"
	"github.com/cypherlabdev/match-predictor-service/pkg/poisson"
	"github.com/cypherlabdev/match-predictor-service/pkg/rating"
)

// Config holds all configuration for match-predictor-service
type Config struct {
	Server    ServerConfig
	Kafka     KafkaConfig
	Redis     RedisConfig
	Rating    RatingConfig
	Model     ModelConfig
	Analytics AnalyticsConfig
	Logging   LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string // Topic to consume from (finished_results)
	GroupID string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RatingConfig holds Elo update parameters
type RatingConfig struct {
	KFactor       float64 // maximum rating points exchanged per match
	HomeAdvantage float64 // rating bonus for the home side during computation
}

// ModelConfig holds the Poisson goal-model parameters and risk policy
type ModelConfig struct {
	HomeAdvantageGoals   float64 // added to expected home goals
	DixonColesRho        float64 // low-score correlation correction
	MaxGoals             int     // scoreline grid bound per side
	MinLambda            float64
	MaxLambda            float64
	FallbackGoalsFor     float64 // league-wide default for teams with no history
	FallbackGoalsAgainst float64
	ValuePickThreshold   int // confidence above this flags a value pick
	LowRiskThreshold     int
	MediumRiskThreshold  int
}

// AnalyticsConfig holds backtest guardrails and the resolution window
type AnalyticsConfig struct {
	MinSampleSize         int
	SignificanceThreshold float64       // accuracy gap in percentage points
	ResolveLookback       time.Duration // bounded sweep window for resolution
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8082)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "finished_results")
	v.SetDefault("kafka.group_id", "match-predictor")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("rating.k_factor", 32.0)
	v.SetDefault("rating.home_advantage", 100.0)

	v.SetDefault("model.home_advantage_goals", 0.25)
	v.SetDefault("model.dixon_coles_rho", -0.1)
	v.SetDefault("model.max_goals", 5)
	v.SetDefault("model.min_lambda", 0.05)
	v.SetDefault("model.max_lambda", 6.0)
	v.SetDefault("model.fallback_goals_for", 1.5)
	v.SetDefault("model.fallback_goals_against", 1.2)
	v.SetDefault("model.value_pick_threshold", 70)
	v.SetDefault("model.low_risk_threshold", 75)
	v.SetDefault("model.medium_risk_threshold", 60)

	v.SetDefault("analytics.min_sample_size", 50)
	v.SetDefault("analytics.significance_threshold", 5.0)
	v.SetDefault("analytics.resolve_lookback", 168*time.Hour)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvPrefix("MATCH_PREDICTOR")
	v.AutomaticEnv()
	// Replace . with _ for environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal to struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// ToRatingParams converts config to rating engine parameters
func (c *Config) ToRatingParams() rating.Params {
	return rating.Params{
		KFactor:       c.Rating.KFactor,
		HomeAdvantage: c.Rating.HomeAdvantage,
		Risk:          c.riskThresholds(),
	}
}

// ToModelParams converts config to Poisson model parameters
func (c *Config) ToModelParams() poisson.Params {
	return poisson.Params{
		HomeAdvantageGoals:   c.Model.HomeAdvantageGoals,
		Rho:                  c.Model.DixonColesRho,
		MaxGoals:             c.Model.MaxGoals,
		MinLambda:            c.Model.MinLambda,
		MaxLambda:            c.Model.MaxLambda,
		FallbackGoalsFor:     c.Model.FallbackGoalsFor,
		FallbackGoalsAgainst: c.Model.FallbackGoalsAgainst,
		Risk:                 c.riskThresholds(),
	}
}

// ToAnalyticsParams converts config to aggregator parameters
func (c *Config) ToAnalyticsParams() analytics.Params {
	return analytics.Params{
		MinSampleSize:         c.Analytics.MinSampleSize,
		SignificanceThreshold: c.Analytics.SignificanceThreshold,
	}
}

func (c *Config) riskThresholds() models.RiskThresholds {
	return models.RiskThresholds{
		ValuePick: c.Model.ValuePickThreshold,
		Low:       c.Model.LowRiskThreshold,
		Medium:    c.Model.MediumRiskThreshold,
	}
}
