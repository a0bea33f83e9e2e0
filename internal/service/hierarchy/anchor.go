package hierarchy

import (
	"context"
	"fmt"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

// anchorMessageID returns the message carrying the Pole's reactions. Poles
// created before the anchor was stored fall back to the oldest message of
// the roles channel.
func (s *Service) anchorMessageID(ctx context.Context, pole *domain.Pole) (string, error) {
	if pole.AnchorMessageID != "" {
		return pole.AnchorMessageID, nil
	}
	if !pole.HasRolesChannel() {
		return "", domain.NewPlatformError("resolve anchor",
			fmt.Errorf("pole %q has no roles channel: %w", pole.Name, domain.ErrUnknownResource))
	}

	msgs, err := s.platform.FetchMessages(ctx, pole.RolesChannelID)
	if err != nil {
		return "", err
	}
	if len(msgs) == 0 {
		return "", domain.NewPlatformError("resolve anchor",
			fmt.Errorf("roles channel %s is empty: %w", pole.RolesChannelID, domain.ErrUnknownResource))
	}
	return msgs[0].ID, nil
}
