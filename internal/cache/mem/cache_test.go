package mem

import (
	"testing"

	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	c := New()
	assert.False(t, c.Valid())

	c.Update([]domain.Player{
		{ID: 1, Name: "tim"},
		{ID: 2, Name: "Alex"},
		{ID: 3, Name: "Émile"},
	})
	require.True(t, c.Valid())

	p, ok := c.GetPlayerByName("  ALEX ")
	require.True(t, ok)
	assert.Equal(t, 2, p.ID)

	p, ok = c.GetPlayer(3)
	require.True(t, ok)
	assert.Equal(t, "Émile", p.Name)

	_, ok = c.GetPlayer(9)
	assert.False(t, ok)

	names := make([]string, 0, 3)
	for _, p := range c.List() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Alex", "Émile", "tim"}, names)

	c.Update([]domain.Player{{ID: 1, Name: "tim"}})
	_, ok = c.GetPlayerByName("alex")
	assert.False(t, ok, "update replaces the whole list")

	c.Invalidate()
	assert.False(t, c.Valid())
}
