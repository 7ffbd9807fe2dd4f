package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	TMDB      TMDB      `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	Storage   Storage   `json:"storage" yaml:"storage" mapstructure:"storage"`
	Recommend Recommend `json:"recommend" yaml:"recommend" mapstructure:"recommend"`
	Server    Server    `json:"server" yaml:"server" mapstructure:"server"`
}

type TMDB struct {
	Scheme            string        `json:"scheme" yaml:"scheme" mapstructure:"scheme" validate:"omitempty,oneof=http https"`
	Host              string        `json:"host" yaml:"host" mapstructure:"host"`
	APIKey            string        `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
	BaseBackoff       time.Duration `json:"backoff" yaml:"backoff" mapstructure:"backoff" validate:"gte=0"`
	MaxRetries        int           `json:"maxRetries" yaml:"maxRetries" mapstructure:"maxRetries" validate:"gte=0"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond" mapstructure:"requestsPerSecond" validate:"gte=0"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
	CacheTTL          time.Duration `json:"cacheTTL" yaml:"cacheTTL" mapstructure:"cacheTTL" validate:"gte=0"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
}

// Storage selects the snapshot backend. FilePath is the json file, the sqlite
// database or the badger directory depending on Driver.
type Storage struct {
	Driver   string `json:"driver" yaml:"driver" mapstructure:"driver" validate:"omitempty,oneof=file sqlite badger"`
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Recommend tunes the recommendation engine. Zero values use the engine defaults.
type Recommend struct {
	Neighbors       int     `json:"neighbors" yaml:"neighbors" mapstructure:"neighbors" validate:"gte=0"`
	SimilarCount    int     `json:"similarCount" yaml:"similarCount" mapstructure:"similarCount" validate:"gte=0"`
	ResultSize      int     `json:"resultSize" yaml:"resultSize" mapstructure:"resultSize" validate:"gte=0"`
	Window          int     `json:"window" yaml:"window" mapstructure:"window" validate:"gte=0"`
	MinWatchEvents  int     `json:"minWatchEvents" yaml:"minWatchEvents" mapstructure:"minWatchEvents" validate:"gte=0"`
	MinTransactions int     `json:"minTransactions" yaml:"minTransactions" mapstructure:"minTransactions" validate:"gte=0"`
	MinSupport      float64 `json:"minSupport" yaml:"minSupport" mapstructure:"minSupport" validate:"gte=0,lte=1"`
	MinConfidence   float64 `json:"minConfidence" yaml:"minConfidence" mapstructure:"minConfidence" validate:"gte=0,lte=1"`
	MaxRules        int     `json:"maxRules" yaml:"maxRules" mapstructure:"maxRules" validate:"gte=0"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, c.Validate()
}

// Validate checks the value ranges of every section
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
