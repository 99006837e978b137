package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alphadash/internal/filter"
)

func TestFocusManager_Rotates(t *testing.T) {
	f := NewFocusManager([]filter.GroupID{"chain", "event", "severity"})
	var moves []string
	f.OnChange = func(from, to filter.GroupID) { moves = append(moves, string(from)+">"+string(to)) }

	assert.Equal(t, filter.GroupID("chain"), f.Current)
	assert.Equal(t, filter.GroupID("event"), f.Next())
	assert.Equal(t, filter.GroupID("severity"), f.Next())
	assert.Equal(t, filter.GroupID("chain"), f.Next(), "wraps forward")
	assert.Equal(t, filter.GroupID("severity"), f.Prev(), "wraps backward")
	assert.Equal(t, []string{"chain>event", "event>severity", "severity>chain", "chain>severity"}, moves)
}

func TestFocusManager_SetFocus(t *testing.T) {
	f := NewFocusManager([]filter.GroupID{"a", "b"})
	assert.True(t, f.SetFocus("b"))
	assert.Equal(t, 1, f.Index())
	assert.False(t, f.SetFocus("zzz"))
	assert.Equal(t, filter.GroupID("b"), f.Current)

	empty := NewFocusManager(nil)
	assert.Equal(t, filter.GroupID(""), empty.Next())
	assert.Equal(t, -1, empty.Index())
}
