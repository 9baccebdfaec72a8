// Test Type: Unit Test
// Description: Tests for the EditSequence command

package edit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ticketlink/pkg/catalog"
	"github.com/arthur-debert/ticketlink/pkg/errors"
)

var defaultTokens = []string{"issuePrefix", "-", "[0-9]+", ".", "baseUrl"}

func TestEditSequence(t *testing.T) {
	tests := []struct {
		name     string
		opts     EditSequenceOptions
		after    []string
		eligible bool
	}{
		{
			name:     "move base url to the front",
			opts:     EditSequenceOptions{Action: ActionMove, From: 4, To: 0},
			after:    []string{"baseUrl", "issuePrefix", "-", "[0-9]+", "."},
			eligible: true,
		},
		{
			name:     "move onto itself",
			opts:     EditSequenceOptions{Action: ActionMove, From: 2, To: 2},
			after:    defaultTokens,
			eligible: true,
		},
		{
			name:     "insert by token",
			opts:     EditSequenceOptions{Action: ActionInsert, Index: 0, Component: "ticketType"},
			after:    []string{"ticketType", "issuePrefix", "-", "[0-9]+", ".", "baseUrl"},
			eligible: true,
		},
		{
			name:     "insert by id at the end",
			opts:     EditSequenceOptions{Action: ActionInsert, Index: 5, Component: catalog.IDSeparatorSlash},
			after:    []string{"issuePrefix", "-", "[0-9]+", ".", "baseUrl", "/"},
			eligible: true,
		},
		{
			name:     "insert creates adjacent separators",
			opts:     EditSequenceOptions{Action: ActionInsert, Index: 4, Component: "_"},
			after:    []string{"issuePrefix", "-", "[0-9]+", ".", "_", "baseUrl"},
			eligible: false,
		},
		{
			name:     "remove separator",
			opts:     EditSequenceOptions{Action: ActionRemove, Index: 1},
			after:    []string{"issuePrefix", "[0-9]+", ".", "baseUrl"},
			eligible: true,
		},
		{
			name:     "remove ticket number",
			opts:     EditSequenceOptions{Action: ActionRemove, Index: 2},
			after:    []string{"issuePrefix", "-", ".", "baseUrl"},
			eligible: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EditSequence(tt.opts)
			require.NoError(t, err)

			assert.Equal(t, tt.opts.Action, result.Action)
			assert.Equal(t, defaultTokens, result.Before)
			assert.Equal(t, tt.after, result.After)
			require.NotNil(t, result.Validation)
			assert.Equal(t, tt.after, result.Validation.Tokens)
			assert.Equal(t, tt.eligible, result.Validation.SaveEligible)
		})
	}
}

func TestEditSequenceErrors(t *testing.T) {
	tests := []struct {
		name string
		opts EditSequenceOptions
		code errors.ErrorCode
	}{
		{
			name: "remove permanent",
			opts: EditSequenceOptions{Action: ActionRemove, Index: 0},
			code: errors.ErrPermanentComponent,
		},
		{
			name: "insert second base url",
			opts: EditSequenceOptions{Action: ActionInsert, Index: 0, Component: "baseUrl"},
			code: errors.ErrPermanentComponent,
		},
		{
			name: "insert unknown",
			opts: EditSequenceOptions{Action: ActionInsert, Index: 0, Component: "nope"},
			code: errors.ErrUnknownComponent,
		},
		{
			name: "move out of range",
			opts: EditSequenceOptions{Action: ActionMove, From: 0, To: 9},
			code: errors.ErrIndexOutOfRange,
		},
		{
			name: "remove negative index",
			opts: EditSequenceOptions{Action: ActionRemove, Index: -1},
			code: errors.ErrIndexOutOfRange,
		},
		{
			name: "unknown action",
			opts: EditSequenceOptions{Action: "swap"},
			code: errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EditSequence(tt.opts)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestEditSequenceUsesGivenTokens(t *testing.T) {
	result, err := EditSequence(EditSequenceOptions{
		Tokens: []string{"baseUrl", "/", "issuePrefix", "-", "[0-9]+"},
		Action: ActionMove,
		From:   0,
		To:     4,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/", "issuePrefix", "-", "[0-9]+", "baseUrl"}, result.After)
	assert.False(t, result.Validation.SaveEligible)
}
