package sequence

import (
	"github.com/arthur-debert/ticketlink/pkg/catalog"
	"github.com/arthur-debert/ticketlink/pkg/errors"
	"github.com/arthur-debert/ticketlink/pkg/logging"
	"github.com/arthur-debert/ticketlink/pkg/types"
)

// Sequence is an ordered list of components; order defines concatenation
type Sequence []types.Component

// DefaultTokens is the sequence used when nothing is configured:
// PREFIX-123.base-url
var DefaultTokens = []string{
	catalog.TokenIssuePrefix,
	catalog.TokenDash,
	catalog.TokenNumeric,
	catalog.TokenDot,
	catalog.TokenBaseURL,
}

// Default resolves DefaultTokens against the given catalog
func Default(cat *catalog.Catalog, opts ...Option) (Sequence, error) {
	return FromTokens(cat, DefaultTokens, opts...)
}

// FromTokens turns a persisted token list into a sequence
func FromTokens(cat *catalog.Catalog, tokens []string, opts ...Option) (Sequence, error) {
	logger := logging.GetLogger("sequence")
	o := buildOptions(opts)

	seq := make(Sequence, 0, len(tokens))
	for i, token := range tokens {
		entry, err := cat.ByToken(token)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrUnknownComponent, "unknown component token %q at position %d", token, i).
				WithDetail("token", token).
				WithDetail("index", i)
		}
		if !entry.Repeatable() && seq.Contains(entry.ID) {
			return nil, duplicateError(entry)
		}
		seq = append(seq, newComponent(entry, o.tokens))
	}

	logger.Trace().Strs("tokens", tokens).Int("length", len(seq)).Msg("sequence resolved")
	return seq, nil
}

func newComponent(entry *types.Entry, src TokenSource) types.Component {
	if !entry.Repeatable() {
		return types.Component{Entry: entry}
	}
	return types.Component{Entry: entry, Instance: src.Next()}
}

func duplicateError(entry *types.Entry) error {
	code := errors.ErrAlreadyExists
	if entry.Permanent {
		code = errors.ErrPermanentComponent
	}
	return errors.Newf(code, "component %q can only appear once", entry.ID).
		WithDetail("id", entry.ID)
}

// Tokens serializes the sequence to its flat token list
func (s Sequence) Tokens() []string {
	tokens := make([]string, 0, len(s))
	for _, c := range s {
		tokens = append(tokens, c.Token())
	}
	return tokens
}

// IDs returns the per-position component ids
func (s Sequence) IDs() []string {
	ids := make([]string, 0, len(s))
	for _, c := range s {
		ids = append(ids, c.ID())
	}
	return ids
}

// Contains reports whether a component with the given catalog id is present
func (s Sequence) Contains(baseID string) bool {
	return s.Count(baseID) > 0
}

// Count returns how many components reference the given catalog id
func (s Sequence) Count(baseID string) int {
	n := 0
	for _, c := range s {
		if c.BaseID() == baseID {
			n++
		}
	}
	return n
}

// Clone returns a copy that shares catalog entries but not the backing array
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

func checkIndex(seq Sequence, index, limit int, name string) error {
	if index < 0 || index >= limit {
		return errors.Newf(errors.ErrIndexOutOfRange, "%s index %d out of range [0, %d)", name, index, limit).
			WithDetail(name, index).
			WithDetail("length", len(seq))
	}
	return nil
}

// Move returns a new sequence with the component at from relocated to to.
// Every other component keeps its relative order.
func Move(seq Sequence, from, to int) (Sequence, error) {
	if err := checkIndex(seq, from, len(seq), "from"); err != nil {
		return nil, err
	}
	if err := checkIndex(seq, to, len(seq), "to"); err != nil {
		return nil, err
	}

	out := seq.Clone()
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append(Sequence{moved}, out[to:]...)...)
	return out, nil
}

// Insert returns a new sequence with a fresh instance of entry placed at
// index. index may equal len(seq) to append.
func Insert(seq Sequence, index int, entry *types.Entry, opts ...Option) (Sequence, error) {
	if entry == nil {
		return nil, errors.New(errors.ErrInvalidInput, "cannot insert a nil catalog entry")
	}
	if err := checkIndex(seq, index, len(seq)+1, "index"); err != nil {
		return nil, err
	}
	if !entry.Repeatable() && seq.Contains(entry.ID) {
		return nil, duplicateError(entry)
	}

	o := buildOptions(opts)
	out := make(Sequence, 0, len(seq)+1)
	out = append(out, seq[:index]...)
	out = append(out, newComponent(entry, o.tokens))
	out = append(out, seq[index:]...)
	return out, nil
}

// Remove returns a new sequence without the component at index. Permanent
// components cannot be removed.
func Remove(seq Sequence, index int) (Sequence, error) {
	if err := checkIndex(seq, index, len(seq), "index"); err != nil {
		return nil, err
	}
	if c := seq[index]; c.Permanent() {
		return nil, errors.Newf(errors.ErrPermanentComponent, "component %q is permanent and can only be moved", c.BaseID()).
			WithDetail("id", c.BaseID()).
			WithDetail("index", index)
	}

	out := make(Sequence, 0, len(seq)-1)
	out = append(out, seq[:index]...)
	out = append(out, seq[index+1:]...)
	return out, nil
}

// Resolve re-points every component at the catalog entry with the same base
// id, keeping instance tokens. Components the catalog does not know are an
// error.
func Resolve(cat *catalog.Catalog, seq Sequence) (Sequence, error) {
	out := make(Sequence, 0, len(seq))
	for i, c := range seq {
		entry, err := cat.Get(c.BaseID())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrUnknownComponent, "unknown component %q at position %d", c.ID(), i).
				WithDetail("id", c.ID()).
				WithDetail("index", i)
		}
		instance := c.Instance
		if !entry.Repeatable() {
			instance = ""
		}
		out = append(out, types.Component{Entry: entry, Instance: instance})
	}
	return out, nil
}
