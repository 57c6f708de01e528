package config

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the root configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	MySQL  MySQLConfig  `mapstructure:"mysql"`
	Log    LogConfig    `mapstructure:"log"`
	Jaeger JaegerConfig `mapstructure:"jaeger"`
	Engine EngineConfig `mapstructure:"engine"`
}

// ServerListen for listening port
type ServerListen struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ServerConfig ...
type ServerConfig struct {
	GRPC ServerListen `mapstructure:"grpc"`
	HTTP ServerListen `mapstructure:"http"`
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	URL         string  `mapstructure:"url"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// EngineConfig for the event engine
type EngineConfig struct {
	WorldID           int64         `mapstructure:"world_id"`
	DeltaWindow       time.Duration `mapstructure:"delta_window"`
	HeadCacheSize     int           `mapstructure:"head_cache_size"`
	HeadCacheTTL      time.Duration `mapstructure:"head_cache_ttl"`
	FuelBasePrice     int64         `mapstructure:"fuel_base_price"`
	FuelVolatility    int64         `mapstructure:"fuel_volatility"`
	FuelPriceInterval time.Duration `mapstructure:"fuel_price_interval"`
}

// ListenString for listen to 0.0.0.0
func (s ServerListen) ListenString() string {
	return fmt.Sprintf(":%d", s.Port)
}

func (s ServerListen) String() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.grpc.host", "localhost")
	v.SetDefault("server.grpc.port", 4001)
	v.SetDefault("server.http.host", "localhost")
	v.SetDefault("server.http.port", 4000)

	v.SetDefault("log.level", "info")
	v.SetDefault("jaeger.sample_ratio", 1.0)

	v.SetDefault("engine.world_id", 1)
	v.SetDefault("engine.delta_window", "3600ms")
	v.SetDefault("engine.head_cache_size", 1024*1024)
	v.SetDefault("engine.head_cache_ttl", "1s")
	v.SetDefault("engine.fuel_base_price", 200)
	v.SetDefault("engine.fuel_volatility", 30)
	v.SetDefault("engine.fuel_price_interval", "15m")
}

func load(dir string, name string) Config {
	_ = godotenv.Load(path.Join(dir, ".env"))

	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yml")
	v.AddConfigPath(dir)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	err := v.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var cfg Config
	err = v.Unmarshal(&cfg)
	if err != nil {
		panic(err)
	}

	if err := cfg.Engine.validate(); err != nil {
		panic(err)
	}
	return cfg
}

func (c EngineConfig) validate() error {
	if c.DeltaWindow <= 0 {
		return fmt.Errorf("engine.delta_window must be positive, got %s", c.DeltaWindow)
	}
	if c.FuelPriceInterval <= 0 {
		return fmt.Errorf("engine.fuel_price_interval must be positive, got %s", c.FuelPriceInterval)
	}
	return nil
}

// Load config from config.yml in the working directory
func Load() Config {
	return load(".", "config")
}

// LoadTestConfig load config for testing from config.test.yml
func LoadTestConfig(rootDir string) Config {
	return load(rootDir, "config.test")
}
