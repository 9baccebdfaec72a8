package types

// Kind classifies what a component contributes to a built URL
type Kind string

const (
	// KindDynamicField components are filled from the ticket context or the
	// environment base URL
	KindDynamicField Kind = "dynamic-field"

	// KindSeparator components contribute their literal character
	KindSeparator Kind = "separator"

	// KindRegexPlaceholder components stand for a value matched by a regex
	KindRegexPlaceholder Kind = "regex-placeholder"
)

// Field specialises dynamic-field components
type Field string

const (
	FieldNone        Field = ""
	FieldTicketType  Field = "ticket-type"
	FieldIssuePrefix Field = "issue-prefix"
	FieldBaseURL     Field = "base-url"
)

// Literals of the built-in regex placeholders
const (
	NumericPattern      = "[0-9]+"
	AlphanumericPattern = "[a-zA-Z0-9]+"
)

// Entry is an immutable catalog definition of a building block.
// Sequences never copy entries; they point at the catalog's instance.
type Entry struct {
	// ID is the stable catalog identifier (e.g. "issue-prefix", "separator-dash")
	ID string

	// Kind of contribution this entry makes
	Kind Kind

	// Field is set only for dynamic fields
	Field Field

	// Literal is the separator text or the regex source of a placeholder
	Literal string

	// Token is the reserved string used when a sequence is serialized
	Token string

	// Label and Description are shown to users
	Label       string
	Description string

	// Permanent entries may appear at most once and cannot be removed
	Permanent bool
}

// Repeatable reports whether several instances of the entry may coexist in
// one sequence. Only dynamic fields are singletons.
func (e *Entry) Repeatable() bool {
	return e.Kind != KindDynamicField
}

// Component is one position of a sequence: a catalog entry plus an opaque
// instance token that keeps repeated entries distinguishable.
type Component struct {
	Entry    *Entry
	Instance string
}

// ID returns the catalog id for singleton entries and "{baseId}-{instance}"
// for repeatable ones.
func (c Component) ID() string {
	if c.Entry == nil {
		return ""
	}
	if c.Instance == "" {
		return c.Entry.ID
	}
	return c.Entry.ID + "-" + c.Instance
}

// BaseID returns the id of the catalog entry the component refers to
func (c Component) BaseID() string {
	if c.Entry == nil {
		return ""
	}
	return c.Entry.ID
}

// Kind returns the kind of the underlying entry
func (c Component) Kind() Kind {
	if c.Entry == nil {
		return ""
	}
	return c.Entry.Kind
}

// Field returns the dynamic field of the underlying entry, if any
func (c Component) Field() Field {
	if c.Entry == nil {
		return FieldNone
	}
	return c.Entry.Field
}

// Literal returns the separator or regex text of the underlying entry
func (c Component) Literal() string {
	if c.Entry == nil {
		return ""
	}
	return c.Entry.Literal
}

// Token returns the serialization token of the underlying entry
func (c Component) Token() string {
	if c.Entry == nil {
		return ""
	}
	return c.Entry.Token
}

// Permanent reports whether the component may only be moved, never removed
func (c Component) Permanent() bool {
	return c.Entry != nil && c.Entry.Permanent
}

// Is reports whether the component is the given dynamic field
func (c Component) Is(field Field) bool {
	return c.Kind() == KindDynamicField && c.Field() == field
}

// IsSeparator reports whether the component is a separator
func (c Component) IsSeparator() bool {
	return c.Kind() == KindSeparator
}

// IsPlaceholder reports whether the component is a regex placeholder
func (c Component) IsPlaceholder() bool {
	return c.Kind() == KindRegexPlaceholder
}
