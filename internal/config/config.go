package config

import "time"

// Config is the root application configuration.
type Config struct {
	Discord    DiscordConfig    `yaml:"discord"`
	Guild      GuildConfig      `yaml:"guild"`
	Onboarding OnboardingConfig `yaml:"onboarding"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Health     HealthConfig     `yaml:"health"`
	Log        LogConfig        `yaml:"log"`

	// Messages is loaded from Onboarding.MessagesPath during Load.
	Messages Messages `yaml:"-" env:"-"`
}

// DiscordConfig holds the bot credentials and gateway settings.
type DiscordConfig struct {
	Token          string        `yaml:"token"          env:"BOT_TOKEN"              env-required:"true"`
	GuildID        string        `yaml:"guild_id"       env:"GUILD_ID"               env-required:"true"`
	ApplicationID  string        `yaml:"application_id" env:"APPLICATION_ID"`
	SyncEvents     bool          `yaml:"sync_events"    env:"DISCORD_SYNC_EVENTS"    env-default:"false"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"DISCORD_REQUEST_TIMEOUT" env-default:"15s"`
}

// GuildConfig identifies the channels and roles the bot relies on. The admin
// role gates the hierarchy commands.
type GuildConfig struct {
	RulesChannelID string `yaml:"rules_channel_id" env:"RULES_CHANNEL_ID" env-required:"true"`
	BaseRoleID     string `yaml:"base_role_id"     env:"BASE_ROLE_ID"     env-required:"true"`
	AdminRoleID    string `yaml:"admin_role_id"    env:"ADMIN_ROLE_ID"    env-required:"true"`
}

// OnboardingConfig points to the messages file used by the welcome flow.
type OnboardingConfig struct {
	MessagesPath string `yaml:"messages_path" env:"MESSAGES_PATH" env-default:"./messages.json"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// RedisConfig enables the routing cache when URL is set.
type RedisConfig struct {
	URL string        `yaml:"url" env:"REDIS_URL"`
	TTL time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"10m"`
}

// Enabled reports whether a Redis URL was configured.
func (c RedisConfig) Enabled() bool { return c.URL != "" }

// HealthConfig configures the probe server. An empty Addr disables it.
type HealthConfig struct {
	Addr            string        `yaml:"addr"             env:"HEALTH_ADDR"             env-default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HEALTH_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Messages are the texts of the onboarding flow and of the roles channels.
type Messages struct {
	Rules       string       `yaml:"rules"        json:"rules"`
	Accept      string       `yaml:"accept"       json:"accept"`
	AcceptEmoji string       `yaml:"accept_emoji" json:"accept_emoji"`
	Welcome     string       `yaml:"welcome"      json:"welcome"`
	PoleAnchor  string       `yaml:"pole_anchor"  json:"pole_anchor"  env-default:"%s **%s**: react below to join a thematic."`
	Modal       ModalMessage `yaml:"modal"        json:"modal"`
}

// ModalMessage describes the registration form.
type ModalMessage struct {
	Title  string       `yaml:"title"  json:"title"`
	Fields []ModalField `yaml:"fields" json:"fields"`
}

// ModalField is one text input of the registration form.
type ModalField struct {
	ID          string `yaml:"id"          json:"id"`
	Label       string `yaml:"label"       json:"label"`
	Placeholder string `yaml:"placeholder" json:"placeholder"`
	Required    bool   `yaml:"required"    json:"required"`
	Paragraph   bool   `yaml:"paragraph"   json:"paragraph"`
}
