package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pole is the top level of the hierarchy. Members join its Thematics by
// reacting on the anchor message posted in the roles channel.
type Pole struct {
	ID              uuid.UUID
	Name            string
	Emoji           string
	RolesChannelID  string
	AnchorMessageID string
	CreatedAt       time.Time
}

// HasRolesChannel reports whether the Pole is bound to a roles channel.
func (p Pole) HasRolesChannel() bool { return p.RolesChannelID != "" }

// Thematic belongs to exactly one Pole and is backed by a platform role.
// (PoleID, EmojiKey) is unique.
type Thematic struct {
	ID        uuid.UUID
	PoleID    uuid.UUID
	Name      string
	Emoji     string
	EmojiKey  string
	RoleID    string
	ChannelID *string
	CreatedAt time.Time
}

// Project is a leaf of the hierarchy. It has no role and no emoji.
type Project struct {
	ID         uuid.UUID
	ThematicID uuid.UUID
	Name       string
	ChannelID  *string
	CreatedAt  time.Time
}

// Hierarchy is a read-only snapshot of the whole Pole -> Thematic -> Project tree.
type Hierarchy struct {
	Poles []PoleNode
}

// PoleNode is a Pole with its Thematics.
type PoleNode struct {
	Pole
	Thematics []ThematicNode
}

// ThematicNode is a Thematic with its Projects.
type ThematicNode struct {
	Thematic
	Projects []Project
}

// IsEmpty reports whether no Pole exists.
func (h *Hierarchy) IsEmpty() bool { return h == nil || len(h.Poles) == 0 }

// BuildHierarchy assembles flat lists into a tree, keeping the input order at
// every level. Orphans (unknown parent id) are dropped.
func BuildHierarchy(poles []Pole, thematics []Thematic, projects []Project) *Hierarchy {
	projectsByThematic := make(map[uuid.UUID][]Project, len(thematics))
	for _, p := range projects {
		projectsByThematic[p.ThematicID] = append(projectsByThematic[p.ThematicID], p)
	}

	thematicsByPole := make(map[uuid.UUID][]ThematicNode, len(poles))
	for _, t := range thematics {
		thematicsByPole[t.PoleID] = append(thematicsByPole[t.PoleID], ThematicNode{
			Thematic: t,
			Projects: projectsByThematic[t.ID],
		})
	}

	h := &Hierarchy{Poles: make([]PoleNode, 0, len(poles))}
	for _, p := range poles {
		h.Poles = append(h.Poles, PoleNode{Pole: p, Thematics: thematicsByPole[p.ID]})
	}
	return h
}
