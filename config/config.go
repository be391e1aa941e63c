package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string `toml:"env"`

	Database  DatabaseConfigs `toml:"database"`
	ApiServer ServerConfigs   `toml:"api_server"`
	Auth      AuthConfigs     `toml:"auth"`
	Redis     RedisConfigs    `toml:"redis"`
	Kafka     KafkaConfigs    `toml:"kafka"`
	Progress  ProgressConfigs `toml:"progress"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host         string   `toml:"host"`
	Port         string   `toml:"port"`
	AllowCORS    []string `toml:"allow_cors"`
	MaxLimit     int      `toml:"max_limit"`
	DefaultLimit int      `toml:"default_limit"`
}

type AuthConfigs struct {
	TokenSecret string       `toml:"token_secret"`
	AccessToken TokenConfigs `toml:"access_token"`

	// PasswordHasher selects the hashing strategy at startup. Supported
	// values are "bcrypt" and "argon2id".
	PasswordHasher string `toml:"password_hasher"`
}

type TokenConfigs struct {
	Name       string        `toml:"name"`
	Expiration time.Duration `toml:"expiration"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

type KafkaConfigs struct {
	Addr string `toml:"addr"`
}

type ProgressConfigs struct {
	// DefaultDailyGoal applies to users who never configured a goal.
	DefaultDailyGoal int `toml:"default_daily_goal"`

	// CalendarDays is the window returned by the streak calendar.
	CalendarDays int `toml:"calendar_days"`

	SnapshotCacheTTL time.Duration `toml:"snapshot_cache_ttl"`

	// ReevaluateWindow bounds the nightly re-evaluation to users active
	// within this duration.
	ReevaluateWindow time.Duration `toml:"reevaluate_window"`
}

// Load reads configurations from a toml file.
func Load(path string) (Configs, error) {
	var cfg Configs
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, err
	}

	if cfg.Progress.DefaultDailyGoal == 0 {
		cfg.Progress.DefaultDailyGoal = 5
	}

	if cfg.Progress.CalendarDays == 0 {
		cfg.Progress.CalendarDays = 90
	}

	return cfg, nil
}
