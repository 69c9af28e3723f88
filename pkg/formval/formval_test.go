package formval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitList("a, b ,c"))
	assert.Equal(t, []string{}, SplitList(""))
	assert.Equal(t, []string{}, SplitList("   "))
	assert.Equal(t, []string{"Go", "Rust", "TS"}, SplitList("Go, Rust, TS"))
	assert.Equal(t, []string{"solo"}, SplitList("solo"))
	assert.Equal(t, []string{"a", "b"}, SplitList("a,,b"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello World"))
	assert.Equal(t, "whats-new-in-go-125", Slugify("What's New in Go 1.25?"))
	assert.Equal(t, "already-a-slug", Slugify("already-a-slug"))
	assert.Equal(t, "spaces-collapse", Slugify("  Spaces   Collapse  "))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2023-06-01")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), got)

	_, ok = ParseDate("2023-06-01T10:30:00Z")
	assert.True(t, ok)

	got, ok = ParseDate("")
	assert.True(t, ok)
	assert.True(t, got.IsZero())

	_, ok = ParseDate("junk")
	assert.False(t, ok)
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool("true"))
	assert.True(t, ParseBool("True"))
	assert.False(t, ParseBool("false"))
	assert.False(t, ParseBool(""))
	assert.False(t, ParseBool("1"))
}
