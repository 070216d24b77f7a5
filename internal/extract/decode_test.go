package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	t.Run("valid object", func(t *testing.T) {
		got := Decode(`{"a": 1, "b": 2}`, map[string]int{})
		assert.Equal(t, map[string]int{"a": 1, "b": 2}, got)
	})

	t.Run("valid list", func(t *testing.T) {
		got := Decode(`["x", "y"]`, []string{})
		assert.Equal(t, []string{"x", "y"}, got)
	})

	t.Run("empty text returns fallback", func(t *testing.T) {
		got := Decode("", map[string]int{"fallback": 1})
		assert.Equal(t, map[string]int{"fallback": 1}, got)
	})

	t.Run("literal null returns fallback", func(t *testing.T) {
		got := Decode("null", []string{"fallback"})
		assert.Equal(t, []string{"fallback"}, got)
	})

	t.Run("malformed text returns fallback", func(t *testing.T) {
		got := Decode(`{"unclosed": `, map[string]int{})
		assert.Empty(t, got)
	})

	t.Run("type mismatch returns fallback", func(t *testing.T) {
		got := Decode(`{"a": 1}`, []string{})
		assert.Empty(t, got)
	})
}
