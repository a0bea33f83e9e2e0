package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPole inserts a Pole bound to a fresh roles channel id.
func SeedPole(t *testing.T, pool *pgxpool.Pool) domain.Pole {
	t.Helper()

	suffix := UniqueSuffix()
	p := domain.Pole{
		ID:              uuid.New(),
		Name:            "pole-" + suffix,
		Emoji:           "🔧",
		RolesChannelID:  "chan-" + suffix,
		AnchorMessageID: "msg-" + suffix,
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO poles (id, name, emoji, roles_channel_id, anchor_message_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Name, p.Emoji, p.RolesChannelID, p.AnchorMessageID, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPole: %v", err)
	}

	return p
}

// SeedThematic inserts a Thematic under poleID with the given emoji key.
func SeedThematic(t *testing.T, pool *pgxpool.Pool, poleID uuid.UUID, emoji string) domain.Thematic {
	t.Helper()

	suffix := UniqueSuffix()
	th := domain.Thematic{
		ID:        uuid.New(),
		PoleID:    poleID,
		Name:      "thematic-" + suffix,
		Emoji:     emoji,
		EmojiKey:  emoji,
		RoleID:    "role-" + suffix,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO thematics (id, pole_id, name, emoji, emoji_key, role_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		th.ID, th.PoleID, th.Name, th.Emoji, th.EmojiKey, th.RoleID, th.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedThematic: %v", err)
	}

	return th
}

// SeedProject inserts a Project under thematicID.
func SeedProject(t *testing.T, pool *pgxpool.Pool, thematicID uuid.UUID) domain.Project {
	t.Helper()

	p := domain.Project{
		ID:         uuid.New(),
		ThematicID: thematicID,
		Name:       "project-" + UniqueSuffix(),
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, thematic_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		p.ID, p.ThematicID, p.Name, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}

	return p
}
