package config

import (
	"fmt"
	"strings"
)

// maxModalFields is the platform limit of text inputs in a modal.
const maxModalFields = 5

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	// env-required only checks that a variable is set, not that it has a value.
	required := []struct{ name, value string }{
		{"discord.token", c.Discord.Token},
		{"discord.guild_id", c.Discord.GuildID},
		{"guild.rules_channel_id", c.Guild.RulesChannelID},
		{"guild.base_role_id", c.Guild.BaseRoleID},
		{"guild.admin_role_id", c.Guild.AdminRoleID},
		{"database.dsn", c.Database.DSN},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s is required", r.name)
		}
	}

	if strings.ContainsAny(c.Discord.Token, " \t\n") {
		return fmt.Errorf("discord.token must not contain whitespace")
	}

	if c.Discord.RequestTimeout <= 0 {
		return fmt.Errorf("discord.request_timeout must be > 0 (got %v)", c.Discord.RequestTimeout)
	}

	if c.Redis.Enabled() && c.Redis.TTL <= 0 {
		return fmt.Errorf("redis.ttl must be > 0 when redis is enabled (got %v)", c.Redis.TTL)
	}

	if err := c.Messages.validate(); err != nil {
		return fmt.Errorf("messages: %w", err)
	}

	return nil
}

func (m *Messages) validate() error {
	if strings.TrimSpace(m.Rules) == "" {
		return fmt.Errorf("rules is required")
	}
	if strings.TrimSpace(m.Accept) == "" {
		return fmt.Errorf("accept is required")
	}
	if strings.TrimSpace(m.Welcome) == "" {
		return fmt.Errorf("welcome is required")
	}
	if strings.Count(m.PoleAnchor, "%s") != 2 {
		return fmt.Errorf("pole_anchor must contain exactly two %%s verbs (emoji, name)")
	}

	if strings.TrimSpace(m.Modal.Title) == "" {
		return fmt.Errorf("modal.title is required")
	}
	if len(m.Modal.Fields) == 0 || len(m.Modal.Fields) > maxModalFields {
		return fmt.Errorf("modal.fields must have between 1 and %d entries (got %d)", maxModalFields, len(m.Modal.Fields))
	}

	seen := make(map[string]struct{}, len(m.Modal.Fields))
	for i, f := range m.Modal.Fields {
		if f.ID == "" || f.Label == "" {
			return fmt.Errorf("modal.fields[%d]: id and label are required", i)
		}
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("modal.fields[%d]: duplicate id %q", i, f.ID)
		}
		seen[f.ID] = struct{}{}
	}

	return nil
}
