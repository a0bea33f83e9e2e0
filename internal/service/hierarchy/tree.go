package hierarchy

import (
	"context"
	"fmt"
	"strings"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

// MaxFormattedLength is the longest text GetFormatted returns, in runes.
const MaxFormattedLength = 2000

// EmptyTreeMessage is rendered when no Pole exists.
const EmptyTreeMessage = "No pole has been created yet."

const truncatedSuffix = "\n…"

// GetTree returns a snapshot of the whole hierarchy.
func (s *Service) GetTree(ctx context.Context) (*domain.Hierarchy, error) {
	poles, err := s.poles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list poles: %w", err)
	}
	thematics, err := s.thematics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list thematics: %w", err)
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return domain.BuildHierarchy(poles, thematics, projects), nil
}

// GetFormatted renders the hierarchy as a chat message. It never mutates
// anything and returns EmptyTreeMessage for an empty tree.
func (s *Service) GetFormatted(ctx context.Context) (string, error) {
	tree, err := s.GetTree(ctx)
	if err != nil {
		return "", err
	}
	return FormatTree(tree), nil
}

// FormatTree renders a hierarchy snapshot, one line per node:
//
//	🔧 **Tech** <#roles-channel>
//	  ⚙️ Backend <@&role> <#channel>
//	    • Website <#channel>
func FormatTree(tree *domain.Hierarchy) string {
	if tree.IsEmpty() {
		return EmptyTreeMessage
	}

	var b strings.Builder
	for i, p := range tree.Poles {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s **%s**", p.Emoji, p.Name)
		if p.HasRolesChannel() {
			fmt.Fprintf(&b, " <#%s>", p.RolesChannelID)
		}
		b.WriteByte('\n')

		if len(p.Thematics) == 0 {
			b.WriteString("  _no thematic_\n")
		}
		for _, t := range p.Thematics {
			fmt.Fprintf(&b, "  %s %s <@&%s>", t.Emoji, t.Name, t.RoleID)
			if t.ChannelID != nil {
				fmt.Fprintf(&b, " <#%s>", *t.ChannelID)
			}
			b.WriteByte('\n')

			for _, pr := range t.Projects {
				fmt.Fprintf(&b, "    • %s", pr.Name)
				if pr.ChannelID != nil {
					fmt.Fprintf(&b, " <#%s>", *pr.ChannelID)
				}
				b.WriteByte('\n')
			}
		}
	}

	return truncate(strings.TrimRight(b.String(), "\n"), MaxFormattedLength)
}

// truncate cuts s to at most limit runes, marking the cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	suffix := []rune(truncatedSuffix)
	return string(runes[:limit-len(suffix)]) + truncatedSuffix
}
