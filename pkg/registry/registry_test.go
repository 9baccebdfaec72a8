// Test Type: Unit Test
// Description: Tests for the ordered registry

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ticketlink/pkg/errors"
)

type testItem struct {
	ID   int
	Name string
}

func TestNew(t *testing.T) {
	reg := New[testItem]()
	require.NotNil(t, reg)
	assert.Equal(t, 0, reg.Count())
	assert.Empty(t, reg.Names())
	assert.Empty(t, reg.Values())
}

func TestRegister(t *testing.T) {
	reg := New[testItem]()

	t.Run("register valid item", func(t *testing.T) {
		require.NoError(t, reg.Register("item1", testItem{ID: 1, Name: "one"}))
		assert.Equal(t, 1, reg.Count())
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", testItem{ID: 2})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("item1", testItem{ID: 3})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
		assert.Equal(t, 1, reg.Count())
	})
}

func TestGet(t *testing.T) {
	reg := New[testItem]()
	require.NoError(t, reg.Register("item1", testItem{ID: 1, Name: "one"}))

	got, err := reg.Get("item1")
	require.NoError(t, err)
	assert.Equal(t, testItem{ID: 1, Name: "one"}, got)
	assert.True(t, reg.Has("item1"))

	_, err = reg.Get("missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "missing", errors.GetErrorDetails(err)["name"])
	assert.False(t, reg.Has("missing"))
}

func TestOrderIsPreserved(t *testing.T) {
	reg := New[testItem]()
	for i, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, reg.Register(name, testItem{ID: i}))
	}

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, reg.Names())
	assert.Equal(t, []testItem{{ID: 0}, {ID: 1}, {ID: 2}}, reg.Values())

	// returned slices are copies
	names := reg.Names()
	names[0] = "changed"
	assert.Equal(t, "zeta", reg.Names()[0])
}

func TestMustHelpers(t *testing.T) {
	reg := New[testItem]()
	MustRegister(reg, "a", testItem{ID: 1})
	assert.Equal(t, 1, MustGet(reg, "a").ID)

	assert.Panics(t, func() { MustRegister(reg, "a", testItem{ID: 2}) })
	assert.Panics(t, func() { MustGet(reg, "missing") })
}
