package branch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
- name: Downtown Location
  address: 12 Main St
  hours:
    monday: {open: "07:00", close: "19:00"}
    saturday: {open: "09:00", close: "14:00"}
- name: Westside Location
  address: 400 West Ave
`

func TestParse(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		reg, err := Parse([]byte(sampleYAML))
		require.NoError(t, err)
		assert.Equal(t, []string{"Downtown Location", "Westside Location"}, reg.Names())
	})

	t.Run("Empty file rejected", func(t *testing.T) {
		_, err := Parse([]byte(""))
		assert.ErrorIs(t, err, ErrNoBranches)
	})

	t.Run("Malformed yaml rejected", func(t *testing.T) {
		_, err := Parse([]byte("::not yaml"))
		assert.Error(t, err)
	})
}

func TestRegistry_Find(t *testing.T) {
	reg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	t.Run("Case-insensitive prefix", func(t *testing.T) {
		b, ok := reg.Find("downtown")
		require.True(t, ok)
		assert.Equal(t, "Downtown Location", b.Name)

		b, ok = reg.Find("WEST")
		require.True(t, ok)
		assert.Equal(t, "Westside Location", b.Name)
	})

	t.Run("Unknown branch", func(t *testing.T) {
		_, ok := reg.Find("harbor")
		assert.False(t, ok)

		_, ok = reg.Find("")
		assert.False(t, ok)
	})
}

func TestBranch_WindowOn(t *testing.T) {
	reg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	downtown, _ := reg.Find("downtown")
	westside, _ := reg.Find("westside")

	monday := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC) // a Monday
	saturday := time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC)

	t.Run("Configured day", func(t *testing.T) {
		assert.Equal(t, Window{Open: "07:00", Close: "19:00"}, downtown.WindowOn(monday))
		assert.Equal(t, Window{Open: "09:00", Close: "14:00"}, downtown.WindowOn(saturday))
	})

	t.Run("Default window when day missing", func(t *testing.T) {
		assert.Equal(t, DefaultWindow, downtown.WindowOn(monday.AddDate(0, 0, 1)))
		assert.Equal(t, DefaultWindow, westside.WindowOn(monday))
	})
}

func TestWindow_Contains(t *testing.T) {
	w := Window{Open: "08:00", Close: "18:00"}

	at := func(hh, mm int) time.Time {
		return time.Date(2025, 3, 3, hh, mm, 0, 0, time.UTC)
	}

	assert.True(t, w.Contains(at(8, 0)))
	assert.True(t, w.Contains(at(12, 30)))
	assert.True(t, w.Contains(at(18, 0)))
	assert.False(t, w.Contains(at(7, 59)))
	assert.False(t, w.Contains(at(19, 0)))

	assert.False(t, Window{Open: "bad", Close: "18:00"}.Contains(at(12, 0)))
}
