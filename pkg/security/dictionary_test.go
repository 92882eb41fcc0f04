package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDictionary(t *testing.T) {
	d := DefaultDictionary()

	assert.Same(t, d, DefaultDictionary())
	assert.Greater(t, d.Len(), 300)
	assert.True(t, d.Contains("password"))
	assert.True(t, d.Contains("QWERTY"))
	assert.True(t, d.Contains("jennifer"))
	assert.False(t, d.Contains("pass"))

	for _, e := range d.entries {
		assert.GreaterOrEqual(t, len(e), 4, "entry %q is too short for substring matching", e)
	}
}

func TestNewDictionary_Normalizes(t *testing.T) {
	d := NewDictionary(" Secret ", "secret", "", "   ", "ABC123")

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"abc123", "secret"}, d.entries)
}

func TestDictionary_MatchIn(t *testing.T) {
	d := NewDictionary("dragon", "monkey")

	entry, ok := d.MatchIn("MyMonkeyDragon!")
	assert.True(t, ok)
	assert.Equal(t, "dragon", entry)

	_, ok = d.MatchIn("Tr8!mK2pQw#Lz")
	assert.False(t, ok)

	_, ok = d.MatchIn("")
	assert.False(t, ok)
}

func TestDictionary_Nil(t *testing.T) {
	var d *Dictionary

	assert.Zero(t, d.Len())
	assert.False(t, d.Contains("password"))
	_, ok := d.MatchIn("password")
	assert.False(t, ok)
}
