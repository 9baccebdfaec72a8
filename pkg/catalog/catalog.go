package catalog

import (
	"fmt"

	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/registry"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

// Reserved serialization tokens of the built-in entries
const (
	TokenTicketType   = "ticketType"
	TokenIssuePrefix  = "issuePrefix"
	TokenBaseURL      = "baseUrl"
	TokenDot          = "."
	TokenDash         = "-"
	TokenUnderscore   = "_"
	TokenSlash        = "/"
	TokenNumeric      = types.NumericPattern
	TokenAlphanumeric = types.AlphanumericPattern
)

// Built-in entry ids
const (
	IDTicketType          = "ticket-type"
	IDIssuePrefix         = "issue-prefix"
	IDBaseURL             = "base-url"
	IDSeparatorDash       = "separator-dash"
	IDSeparatorDot        = "separator-dot"
	IDSeparatorUnderscore = "separator-underscore"
	IDSeparatorSlash      = "separator-slash"
	IDRegexNumeric        = "regex-numeric"
	IDRegexAlphanumeric   = "regex-alphanumeric"
)

// Catalog is an immutable set of building blocks for URL sequences
type Catalog struct {
	byID    registry.Registry[*types.Entry]
	byToken registry.Registry[*types.Entry]
}

// New builds a catalog from the given entries, keeping their order.
// Entries are copied so later changes by the caller have no effect.
func New(entries ...types.Entry) (*Catalog, error) {
	c := &Catalog{
		byID:    registry.New[*types.Entry](),
		byToken: registry.New[*types.Entry](),
	}

	for i := range entries {
		e := entries[i]
		if err := checkEntry(e); err != nil {
			return nil, err
		}
		if err := c.byID.Register(e.ID, &e); err != nil {
			return nil, errors.Wrapf(err, errors.ErrCatalogInvalid, "duplicate catalog id %q", e.ID)
		}
		if err := c.byToken.Register(e.Token, &e); err != nil {
			return nil, errors.Wrapf(err, errors.ErrCatalogInvalid, "duplicate catalog token %q", e.Token)
		}
	}

	return c, nil
}

// MustNew is like New but panics on a malformed catalog
func MustNew(entries ...types.Entry) *Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(fmt.Sprintf("invalid component catalog: %v", err))
	}
	return c
}

func checkEntry(e types.Entry) error {
	invalid := func(format string, args ...interface{}) error {
		return errors.Newf(errors.ErrCatalogInvalid, format, args...).WithDetail("id", e.ID)
	}

	if e.ID == "" {
		return invalid("catalog entry id cannot be empty")
	}
	if e.Token == "" {
		return invalid("catalog entry %q has no token", e.ID)
	}

	switch e.Kind {
	case types.KindDynamicField:
		if e.Field == types.FieldNone {
			return invalid("dynamic field %q has no field", e.ID)
		}
	case types.KindSeparator, types.KindRegexPlaceholder:
		if e.Literal == "" {
			return invalid("%s %q has no literal", e.Kind, e.ID)
		}
		if e.Permanent {
			return invalid("only dynamic fields can be permanent, %q is a %s", e.ID, e.Kind)
		}
	default:
		return invalid("catalog entry %q has unknown kind %q", e.ID, e.Kind)
	}

	return nil
}

// Get returns the entry with the given id. The pointer is shared with the
// catalog and components; callers must not modify it.
func (c *Catalog) Get(id string) (*types.Entry, error) {
	e, err := c.byID.Get(id)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "no catalog entry with id %q", id).
			WithDetail("id", id)
	}
	return e, nil
}

// ByToken returns the entry serialized as the given token, shared like Get
func (c *Catalog) ByToken(token string) (*types.Entry, error) {
	e, err := c.byToken.Get(token)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "no catalog entry for token %q", token).
			WithDetail("token", token)
	}
	return e, nil
}

// Has reports whether an entry with the given id exists
func (c *Catalog) Has(id string) bool {
	return c.byID.Has(id)
}

// Entries returns copies of all entries in catalog order
func (c *Catalog) Entries() []*types.Entry {
	values := c.byID.Values()
	out := make([]*types.Entry, len(values))
	for i, e := range values {
		out[i] = clone(e)
	}
	return out
}

func clone(e *types.Entry) *types.Entry {
	cp := *e
	return &cp
}

// Tokens returns the serialization tokens in catalog order
func (c *Catalog) Tokens() []string {
	return c.byToken.Names()
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return c.byID.Count()
}
