package hierarchy

import "github.com/UTT-Alumni/boarding-duck/internal/domain"

// AddPoleResult is returned by AddPole.
type AddPoleResult struct {
	Pole           *domain.Pole
	ChannelCreated bool
	// Warnings report configuration hazards that did not block the creation.
	Warnings []string
}

// AddThematicResult is returned by AddThematic.
type AddThematicResult struct {
	Thematic *domain.Thematic
	Warnings []string
}

// DeletePoleResult is returned by DeletePole. The platform roles of the
// removed Thematics are not deleted: OrphanedRoleIDs lists them for manual
// cleanup.
type DeletePoleResult struct {
	Pole             *domain.Pole
	ThematicsDeleted int64
	ProjectsDeleted  int64
	OrphanedRoleIDs  []string
	Warnings         []string
}

// DeleteThematicResult is returned by DeleteThematic. Warnings list platform
// objects that were already gone.
type DeleteThematicResult struct {
	Thematic *domain.Thematic
	Warnings []string
}
