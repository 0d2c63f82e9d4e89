package web

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goserg/puzzleboard/internal/domain"
)

var (
	ErrMissingName   = errors.New("name must not be empty")
	ErrMissingPlayer = errors.New("playerId is required")
	ErrMissingDate   = errors.New("date is required")
	ErrBadDate       = errors.New("date must be YYYY-MM-DD")
	ErrNoTimes       = errors.New("at least one time is required")
	ErrUnknownGame   = errors.New("unknown game")
)

type playerRequest struct {
	Name string `json:"name"`
}

func (r playerRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrMissingName
	}
	return nil
}

type submitScoresRequest struct {
	PlayerID int                       `json:"playerId"`
	Date     string                    `json:"date"`
	Times    map[domain.GameKey]string `json:"times"`
}

func (r submitScoresRequest) Validate() error {
	var err error
	if r.PlayerID <= 0 {
		err = errors.Join(err, ErrMissingPlayer)
	}
	switch {
	case r.Date == "":
		err = errors.Join(err, ErrMissingDate)
	case !domain.ValidDate(r.Date):
		err = errors.Join(err, fmt.Errorf("%q: %w", r.Date, ErrBadDate))
	}
	if len(r.Times) == 0 {
		err = errors.Join(err, ErrNoTimes)
	}
	for game := range r.Times {
		if !game.Valid() {
			err = errors.Join(err, fmt.Errorf("%q: %w", game, ErrUnknownGame))
		}
	}
	return err
}

type errorResponse struct {
	Error string `json:"error"`
}
