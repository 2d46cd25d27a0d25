package config

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// SelfplayConfig configures the cmd/selfplay driver only — the rules engine
// itself takes no configuration (per spec's Non-goals, "configuration
// loading" is out of scope for the core). Shaped like the teacher's
// per-node *Configuration structs but flattened to the one process this
// repo ships, following the same mapstructure-tag convention.
type SelfplayConfig struct {
	Workers   int    `mapstructure:"workers"`
	SeedBase  int64  `mapstructure:"seedBase"`
	GameType  string `mapstructure:"gameType"`
	LogLevel  string `mapstructure:"logLevel"`
	DebugAddr string `mapstructure:"debugAddr"`

	NatsConfig  `mapstructure:"nats"`
	MongoConf   `mapstructure:"mongo"`
	RedisConf   `mapstructure:"redis"`
	NatsSubject string `mapstructure:"natsSubject"`
	MongoDB     string `mapstructure:"mongoDatabase"`
	MongoColl   string `mapstructure:"mongoCollection"`
}

// NatsConfig, MongoConf and RedisConf hold the optional service endpoints;
// cmd/selfplay skips a service whose URL, Url or Addr is empty.
type NatsConfig struct {
	URL string `mapstructure:"url"`
}
type MongoConf struct {
	Url string `mapstructure:"url"`
}
type RedisConf struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	PoolSize int    `mapstructure:"poolSize"`
}

// defaultSelfplayConfig mirrors the values a fresh self-play batch needs
// when no config file is supplied.
func defaultSelfplayConfig() SelfplayConfig {
	return SelfplayConfig{
		Workers:     1,
		SeedBase:    1,
		GameType:    "east-south",
		LogLevel:    "info",
		DebugAddr:   "",
		NatsSubject: "mahjongcore.episodes",
		MongoDB:     "mahjongcore",
		MongoColl:   "episodes",
	}
}

// LoadSelfplayConfig reads configFile (if non-empty) over the defaults, the
// way the teacher's Load does for its per-node configs. Environment
// variables override only the keys the file sets; with no file the defaults
// are returned as they are. The file is watched for writes, but the change
// callback does nothing, so the returned config never changes after loading.
func LoadSelfplayConfig(configFile string) (SelfplayConfig, error) {
	cfg := defaultSelfplayConfig()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if configFile == "" {
		return cfg, nil
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	v.WatchConfig()
	v.OnConfigChange(func(in fsnotify.Event) {})
	return cfg, nil
}
