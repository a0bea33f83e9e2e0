package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "pole", "Tech"); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	got := MapError(pgx.ErrNoRows, "pole", "Tech")

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := "pole Tech: not found"; got.Error() != want {
		t.Errorf("MapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_WrappedNoRows(t *testing.T) {
	t.Parallel()

	got := MapError(fmt.Errorf("scan row: %w", pgx.ErrNoRows), "thematic", "Backend")

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(wrapped ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
}

func TestMapError_PgCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want error
	}{
		{CodeUniqueViolation, domain.ErrAlreadyExists},
		{CodeForeignKeyViolation, domain.ErrNotFound},
		{CodeCheckViolation, domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()

			got := MapError(&pgconn.PgError{Code: tt.code}, "project", "API")
			if !errors.Is(got, tt.want) {
				t.Errorf("MapError(%s) = %v, want wrapping %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestMapError_ContextPassThrough(t *testing.T) {
	t.Parallel()

	for _, cause := range []error{context.Canceled, context.DeadlineExceeded} {
		got := MapError(cause, "pole", "Tech")
		if !errors.Is(got, cause) {
			t.Errorf("MapError(%v) should pass the context error through, got %v", cause, got)
		}
		if errors.Is(got, domain.ErrNotFound) {
			t.Errorf("MapError(%v) must not be mapped to ErrNotFound", cause)
		}
	}
}

func TestMapError_Unknown(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	got := MapError(cause, "pole", "Tech")

	if !errors.Is(got, cause) {
		t.Errorf("MapError should keep the original error, got %v", got)
	}
}

func TestConstraintName(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "thematics_pole_emoji_key"})
	if got := ConstraintName(err); got != "thematics_pole_emoji_key" {
		t.Errorf("ConstraintName() = %q", got)
	}
	if got := ConstraintName(errors.New("plain")); got != "" {
		t.Errorf("ConstraintName(plain) = %q, want empty", got)
	}
}
