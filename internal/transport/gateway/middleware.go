package gateway

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
	"github.com/UTT-Alumni/boarding-duck/pkg/ctxutil"
)

// Reply is what the bot sends back for an invocation: a text or a form.
type Reply struct {
	Content string
	Modal   *domain.Modal
	// Err is the failure behind Content, kept for logging.
	Err error
}

// Handler processes one invocation.
type Handler func(ctx context.Context, inv *Invocation) Reply

// Middleware wraps a Handler.
type Middleware func(Handler) Handler

// Chain combines middleware: Chain(mw1, mw2)(h) is mw1(mw2(h)), so mw1 runs
// first.
func Chain(mws ...Middleware) Middleware {
	return func(final Handler) Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Recovery turns a panic into a logged error and the generic failure reply.
func Recovery(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, inv *Invocation) (reply Reply) {
			defer func() {
				if err := recover(); err != nil {
					logger.ErrorContext(ctx, "panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("interaction", inv.Name()),
					)
					reply = Reply{Content: MessageInternal}
				}
			}()
			return next(ctx, inv)
		}
	}
}

// RequestID puts the interaction id (or a fresh uuid) and the invoking user
// into the context.
func RequestID(next Handler) Handler {
	return func(ctx context.Context, inv *Invocation) Reply {
		id := inv.ID
		if id == "" {
			id = uuid.New().String()
		}
		ctx = ctxutil.WithRequestID(ctx, id)
		if inv.UserID != "" {
			ctx = ctxutil.WithActorID(ctx, inv.UserID)
		}
		return next(ctx, inv)
	}
}

// Logger logs every invocation with its outcome and duration.
func Logger(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, inv *Invocation) Reply {
			start := time.Now()

			reply := next(ctx, inv)

			attrs := []slog.Attr{
				slog.String("interaction", inv.Name()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if inv.UserID != "" {
				attrs = append(attrs, slog.String("user_id", inv.UserID), slog.String("user", inv.UserName))
			}

			level := slog.LevelInfo
			if reply.Err != nil {
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("error", reply.Err.Error()))
			}
			logger.LogAttrs(ctx, level, "discord.interaction", attrs...)
			return reply
		}
	}
}
