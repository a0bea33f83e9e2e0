package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
	"github.com/UTT-Alumni/boarding-duck/pkg/ctxutil"
)

// Reply texts shared by several paths.
const (
	MessageForbidden   = "You are not allowed to send commands."
	MessageNotText     = "The specified channel is not a text channel."
	MessageInternal    = ":x: Something went wrong. Please try again later."
	MessagePlatform    = ":x: Discord refused the operation. Check the bot permissions and role position."
	messageUnknownCmd  = "Unknown command."
	messageUnsupported = "This interaction is not supported."
)

// ErrorPresenter turns errors into the single human readable line sent back
// to the user. Unexpected errors are logged and hidden behind a generic text.
type ErrorPresenter struct {
	log *slog.Logger
}

// NewErrorPresenter creates an ErrorPresenter.
func NewErrorPresenter(log *slog.Logger) *ErrorPresenter {
	return &ErrorPresenter{log: log}
}

// Present returns the user message for err.
func (p *ErrorPresenter) Present(ctx context.Context, err error) string {
	msg, known := userMessage(err)
	if !known {
		p.log.ErrorContext(ctx, "unexpected interaction error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		)
	}
	return msg
}

func userMessage(err error) (string, bool) {
	var (
		usage    *UsageError
		unknown  *UnknownCommandError
		partial  *domain.PartialFailureError
		notFound *domain.NotFoundError
		dupName  *domain.DuplicateNameError
		dupEmoji *domain.DuplicateEmojiError
		invalid  *domain.ValidationError
	)

	switch {
	case errors.As(err, &usage):
		return usage.Message, true

	case errors.As(err, &unknown):
		return messageUnknownCmd, true

	// A partial failure wraps the cause: report both.
	case errors.As(err, &partial):
		cause, known := userMessage(partial.Err)
		msg := fmt.Sprintf(":warning: Stopped at step %q: %s", partial.Step, cause)
		if len(partial.Created) > 0 {
			msg += "\nLeft behind, to clean up manually: " + strings.Join(partial.Created, ", ") + "."
		}
		return msg, known

	case errors.As(err, &notFound):
		return fmt.Sprintf("Unable to find the %s %q.", notFound.Level.Label(), notFound.Name), true

	case errors.As(err, &dupName):
		return fmt.Sprintf("A %s named %q already exists.", dupName.Level.Label(), dupName.Name), true

	case errors.As(err, &dupEmoji):
		return fmt.Sprintf("The emoji %s is already used by the thematic %q of the pole %q.",
			dupEmoji.Emoji, dupEmoji.Thematic, dupEmoji.Pole), true

	case errors.Is(err, domain.ErrDuplicateEmoji):
		return "This emoji is already used by another thematic of the pole.", true

	case errors.As(err, &invalid):
		parts := make([]string, 0, len(invalid.Errors))
		for _, fe := range invalid.Errors {
			parts = append(parts, fe.Field+": "+fe.Message)
		}
		return "Invalid input (" + strings.Join(parts, "; ") + ").", true

	case errors.Is(err, domain.ErrInvalidChannelType):
		return MessageNotText, true

	case errors.Is(err, domain.ErrForbidden):
		return MessageForbidden, true

	case errors.Is(err, domain.ErrPlatform):
		return MessagePlatform, false
	}

	return MessageInternal, false
}
