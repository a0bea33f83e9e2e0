// Package onboarding runs the welcome flow of the guild: the rules message
// with its accept button, the registration form and the base role grant.
package onboarding

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UTT-Alumni/boarding-duck/internal/config"
	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

// Custom ids of the onboarding components.
const (
	AcceptButtonID  = "primary"
	RegisterModalID = "registerModal"
)

type platform interface {
	FetchMessages(ctx context.Context, channelID string) ([]domain.Message, error)
	PostMessage(ctx context.Context, channelID, content string, buttons []domain.Button) (string, error)
	GrantRole(ctx context.Context, userID, roleID string) error
}

// Service implements the onboarding flow.
type Service struct {
	log      *slog.Logger
	platform platform
	guild    config.GuildConfig
	messages config.Messages
}

// NewService creates a new onboarding service.
func NewService(log *slog.Logger, platform platform, guild config.GuildConfig, messages config.Messages) *Service {
	return &Service{
		log:      log.With("service", "onboarding"),
		platform: platform,
		guild:    guild,
		messages: messages,
	}
}

// RulesChannelID returns the channel holding the rules message.
func (s *Service) RulesChannelID() string { return s.guild.RulesChannelID }

// EnsureRulesMessage posts the rules with the accept button when the rules
// channel is empty. It reports whether a message was posted.
func (s *Service) EnsureRulesMessage(ctx context.Context) (bool, error) {
	msgs, err := s.platform.FetchMessages(ctx, s.guild.RulesChannelID)
	if err != nil {
		return false, fmt.Errorf("fetch rules channel: %w", err)
	}
	if len(msgs) > 0 {
		s.log.InfoContext(ctx, "rules message already present",
			slog.String("channel_id", s.guild.RulesChannelID),
			slog.Int("messages", len(msgs)),
		)
		return false, nil
	}

	id, err := s.platform.PostMessage(ctx, s.guild.RulesChannelID, s.messages.Rules, []domain.Button{{
		CustomID: AcceptButtonID,
		Label:    s.messages.Accept,
		Emoji:    s.messages.AcceptEmoji,
	}})
	if err != nil {
		return false, fmt.Errorf("post rules message: %w", err)
	}

	s.log.InfoContext(ctx, "rules message posted",
		slog.String("channel_id", s.guild.RulesChannelID),
		slog.String("message_id", id),
	)
	return true, nil
}

// RegistrationModal returns the form shown when the rules are accepted.
func (s *Service) RegistrationModal() domain.Modal {
	fields := make([]domain.ModalField, 0, len(s.messages.Modal.Fields))
	for _, f := range s.messages.Modal.Fields {
		fields = append(fields, domain.ModalField{
			ID:          f.ID,
			Label:       f.Label,
			Placeholder: f.Placeholder,
			Required:    f.Required,
			Paragraph:   f.Paragraph,
		})
	}
	return domain.Modal{CustomID: RegisterModalID, Title: s.messages.Modal.Title, Fields: fields}
}

// Register grants the base role to a member who submitted the registration
// form and returns the welcome text. Required fields must be filled.
func (s *Service) Register(ctx context.Context, userID string, answers map[string]string) (string, error) {
	var errs []domain.FieldError
	for _, f := range s.messages.Modal.Fields {
		if f.Required && strings.TrimSpace(answers[f.ID]) == "" {
			errs = append(errs, domain.FieldError{Field: f.ID, Message: "required"})
		}
	}
	if len(errs) > 0 {
		return "", &domain.ValidationError{Errors: errs}
	}

	if err := s.platform.GrantRole(ctx, userID, s.guild.BaseRoleID); err != nil {
		return "", fmt.Errorf("grant base role: %w", err)
	}

	s.log.InfoContext(ctx, "member registered",
		slog.String("user_id", userID),
		slog.String("role_id", s.guild.BaseRoleID),
		slog.Int("answers", len(answers)),
	)
	return s.messages.Welcome, nil
}
