package mem

import (
	"sync"

	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/normalize"
)

// Cache keeps the player list in memory. Lookups by name use the folded key.
type Cache struct {
	mu      sync.RWMutex
	valid   bool
	players map[string]domain.Player
	byID    map[int]domain.Player
}

func New() *Cache {
	return &Cache{
		players: make(map[string]domain.Player),
		byID:    make(map[int]domain.Player),
	}
}

func (c *Cache) Update(players []domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players = make(map[string]domain.Player, len(players))
	c.byID = make(map[int]domain.Player, len(players))
	for i := range players {
		c.players[normalize.Name(players[i].Name)] = players[i]
		c.byID[players[i].ID] = players[i]
	}
	c.valid = true
}

func (c *Cache) Valid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.valid
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
}

func (c *Cache) GetPlayerByName(name string) (domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	player, ok := c.players[normalize.Name(name)]
	return player, ok
}

func (c *Cache) GetPlayer(id int) (domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	player, ok := c.byID[id]
	return player, ok
}

// List returns the players sorted by name.
func (c *Cache) List() []domain.Player {
	c.mu.RLock()
	players := make([]domain.Player, 0, len(c.byID))
	for _, player := range c.byID {
		players = append(players, player)
	}
	c.mu.RUnlock()

	normalize.SortByName(players, func(p domain.Player) string { return p.Name })
	return players
}
