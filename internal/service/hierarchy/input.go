package hierarchy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

// AddPoleInput holds the parameters for creating a Pole. A nil ChannelID
// creates a new roles channel named after the Pole.
type AddPoleInput struct {
	Name      string
	Emoji     string
	ChannelID *string
}

// Validate checks all fields and collects all errors.
func (i AddPoleInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, "name", i.Name)
	errs = validateEmoji(errs, i.Emoji)
	errs = validateChannel(errs, i.ChannelID)
	return asValidationError(errs)
}

// AddThematicInput holds the parameters for creating a Thematic. A nil
// ChannelID means the Thematic has no dedicated channel.
type AddThematicInput struct {
	PoleName  string
	Name      string
	Emoji     string
	ChannelID *string
}

// Validate checks all fields and collects all errors.
func (i AddThematicInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, "pole", i.PoleName)
	errs = validateName(errs, "name", i.Name)
	errs = validateEmoji(errs, i.Emoji)
	errs = validateChannel(errs, i.ChannelID)
	return asValidationError(errs)
}

// AddProjectInput holds the parameters for creating a Project. CreateChannel
// is ignored when ChannelID is set.
type AddProjectInput struct {
	PoleName      string
	ThematicName  string
	Name          string
	ChannelID     *string
	CreateChannel bool
}

// Validate checks all fields and collects all errors.
func (i AddProjectInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, "pole", i.PoleName)
	errs = validateName(errs, "thematic", i.ThematicName)
	errs = validateName(errs, "name", i.Name)
	errs = validateChannel(errs, i.ChannelID)
	return asValidationError(errs)
}

// DeletePoleInput holds the parameters for deleting a Pole.
type DeletePoleInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i DeletePoleInput) Validate() error {
	return asValidationError(validateName(nil, "pole", i.Name))
}

// DeleteThematicInput holds the parameters for deleting a Thematic.
type DeleteThematicInput struct {
	PoleName string
	Name     string
}

// Validate checks all fields and collects all errors.
func (i DeleteThematicInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, "pole", i.PoleName)
	errs = validateName(errs, "thematic", i.Name)
	return asValidationError(errs)
}

// DeleteProjectInput holds the parameters for deleting a Project.
type DeleteProjectInput struct {
	PoleName     string
	ThematicName string
	Name         string
}

// Validate checks all fields and collects all errors.
func (i DeleteProjectInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, "pole", i.PoleName)
	errs = validateName(errs, "thematic", i.ThematicName)
	errs = validateName(errs, "project", i.Name)
	return asValidationError(errs)
}

// ---------------------------------------------------------------------------
// Field rules
// ---------------------------------------------------------------------------

// Names are compared exactly as supplied, so only emptiness and length are
// checked. Surrounding whitespace is rejected rather than trimmed.
func validateName(errs []domain.FieldError, field, name string) []domain.FieldError {
	switch {
	case strings.TrimSpace(name) == "":
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	case strings.TrimSpace(name) != name:
		errs = append(errs, domain.FieldError{Field: field, Message: "must not start or end with spaces"})
	case len([]rune(name)) > MaxNameLength:
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", MaxNameLength)})
	}
	return errs
}

func validateEmoji(errs []domain.FieldError, raw string) []domain.FieldError {
	if _, err := domain.ParseEmoji(raw); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return append(errs, ve.Errors...)
		}
		return append(errs, domain.FieldError{Field: "emoji", Message: err.Error()})
	}
	return errs
}

func validateChannel(errs []domain.FieldError, channelID *string) []domain.FieldError {
	if channelID != nil && strings.TrimSpace(*channelID) == "" {
		errs = append(errs, domain.FieldError{Field: "channel", Message: "must not be empty"})
	}
	return errs
}

func asValidationError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
