package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ritikbhatt20/Vortex/internal/amm"
)

// Event sink kinds.
const (
	SinkLog      = "log"
	SinkJSONL    = "jsonl"
	SinkPostgres = "postgres"
)

// Config holds application configuration loaded from file.
type Config struct {
	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	LogLevel          string        `yaml:"log_level"`

	// RPCURL enables /estimate against on-chain Uniswap V2 pairs when set.
	RPCURL         string        `yaml:"rpc_url"`
	RPCCallTimeout time.Duration `yaml:"rpc_call_timeout"`

	FaucetEnabled bool        `yaml:"faucet_enabled"`
	DefaultFee    amm.FeeTier `yaml:"default_fee"`

	Events Events `yaml:"events"`
}

// Events selects where committed pool events are written.
type Events struct {
	Sinks       []string `yaml:"sinks"`
	Path        string   `yaml:"path"`
	PostgresDSN string   `yaml:"pg_dsn"`
}

// Load reads the config from a YAML file path, applies fallbacks and validates it.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config file")
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file fields are set.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	const defaultTimeout = 5 * time.Second
	if c.ListenAddr == "" {
		c.ListenAddr = ":1337"
	}
	if c.GraceTimeout == 0 {
		c.GraceTimeout = defaultTimeout
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = defaultTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaultTimeout
	}
	if c.RPCCallTimeout == 0 {
		c.RPCCallTimeout = defaultTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DefaultFee == (amm.FeeTier{}) {
		c.DefaultFee = amm.StandardFee
	}
	if len(c.Events.Sinks) == 0 {
		c.Events.Sinks = []string{SinkLog}
	}
	if c.Events.Path == "" {
		c.Events.Path = "./data/events.jsonl"
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if !c.DefaultFee.Valid() {
		return errors.Errorf("default_fee %d/%d is outside [%d, %d] bps",
			c.DefaultFee.Numerator, c.DefaultFee.Denominator, amm.MinFeeBPS, amm.MaxFeeBPS)
	}
	for _, sink := range c.Events.Sinks {
		switch sink {
		case SinkLog, SinkJSONL:
		case SinkPostgres:
			if c.Events.PostgresDSN == "" {
				return errors.New("events.pg_dsn is required for the postgres sink")
			}
		default:
			return errors.Errorf("unknown event sink %q", sink)
		}
	}
	return nil
}
