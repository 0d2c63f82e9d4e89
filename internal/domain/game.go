package domain

import (
	"bytes"
	"encoding/json"
)

type GameKey string

const (
	Zip        GameKey = "ZIP"
	MiniSudoku GameKey = "MINI_SUDOKU"
	Queens     GameKey = "QUEENS"
)

// GameCount is the arity every "overall" value depends on.
const GameCount = 3

// Games lists the tracked games in display order.
var Games = [GameCount]GameKey{Zip, MiniSudoku, Queens}

// Index returns the position of g in Games.
func (g GameKey) Index() (int, bool) {
	switch g {
	case Zip:
		return 0, true
	case MiniSudoku:
		return 1, true
	case Queens:
		return 2, true
	}
	return -1, false
}

func (g GameKey) Valid() bool {
	_, ok := g.Index()
	return ok
}

func (g GameKey) Label() string {
	switch g {
	case Zip:
		return "Zip"
	case MiniSudoku:
		return "Mini Sudoku"
	case Queens:
		return "Queens"
	}
	return string(g)
}

// PerGame holds one value per tracked game. It marshals to a JSON object
// keyed by game name.
type PerGame[T any] [GameCount]T

// Get returns the value for g, or the zero value for an unknown game.
func (p PerGame[T]) Get(g GameKey) T {
	i, ok := g.Index()
	if !ok {
		var zero T
		return zero
	}
	return p[i]
}

func (p *PerGame[T]) Set(g GameKey, v T) {
	if i, ok := g.Index(); ok {
		p[i] = v
	}
}

func (p PerGame[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range Games {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(g))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *PerGame[T]) UnmarshalJSON(data []byte) error {
	var m map[GameKey]T
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for g, v := range m {
		p.Set(g, v)
	}
	return nil
}
