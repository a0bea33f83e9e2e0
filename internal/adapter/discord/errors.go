package discord

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

// unknownCodes are the JSON error codes Discord returns for objects that no
// longer exist.
var unknownCodes = map[int]bool{
	discordgo.ErrCodeUnknownChannel: true,
	discordgo.ErrCodeUnknownMember:  true,
	discordgo.ErrCodeUnknownMessage: true,
	discordgo.ErrCodeUnknownRole:    true,
	discordgo.ErrCodeUnknownUser:    true,
	discordgo.ErrCodeUnknownEmoji:   true,
}

// mapError wraps a discordgo error into a *domain.PlatformError. Missing
// objects additionally match domain.ErrUnknownResource.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && isUnknown(restErr) {
		return domain.NewPlatformError(op, fmt.Errorf("%w: %w", domain.ErrUnknownResource, err))
	}
	return domain.NewPlatformError(op, err)
}

func isUnknown(e *discordgo.RESTError) bool {
	if e.Message != nil && unknownCodes[e.Message.Code] {
		return true
	}
	return e.Response != nil && e.Response.StatusCode == http.StatusNotFound
}
