package domain

// EntityType identifies a level of the hierarchy (used in audit logs and errors).
type EntityType string

const (
	EntityTypePole     EntityType = "POLE"
	EntityTypeThematic EntityType = "THEMATIC"
	EntityTypeProject  EntityType = "PROJECT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypePole, EntityTypeThematic, EntityTypeProject:
		return true
	}
	return false
}

// Label returns the lower-case noun used in user-facing messages.
func (e EntityType) Label() string {
	switch e {
	case EntityTypePole:
		return "pole"
	case EntityTypeThematic:
		return "thematic"
	case EntityTypeProject:
		return "project"
	}
	return "entity"
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionDelete:
		return true
	}
	return false
}

// ReactionDirection tells whether a reaction was put on or taken off a message.
type ReactionDirection int

const (
	ReactionAdd ReactionDirection = iota + 1
	ReactionRemove
)

func (d ReactionDirection) String() string {
	switch d {
	case ReactionAdd:
		return "add"
	case ReactionRemove:
		return "remove"
	}
	return "unknown"
}

// ChannelType is the subset of platform channel kinds the bot cares about.
type ChannelType string

const (
	ChannelTypeText  ChannelType = "TEXT"
	ChannelTypeOther ChannelType = "OTHER"
)
