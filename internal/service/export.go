package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/normalize"
	"github.com/goserg/puzzleboard/internal/storage"
	"github.com/goserg/puzzleboard/internal/timefmt"
)

const exportVersion = 1

type export struct {
	Version int             `json:"version"`
	Players []domain.Player `json:"players"`
	Scores  []domain.Score  `json:"scores"`
}

func (s *Service) Export(ctx context.Context) ([]byte, error) {
	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	scores, err := s.scores.ListScores(ctx, storage.ScoreFilter{})
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(export{
		Version: exportVersion,
		Players: players,
		Scores:  scores,
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Import merges an export into the storage. Players keep their ids, rows
// with the same key are overwritten. Nothing is imported when any row is
// rejected.
func (s *Service) Import(ctx context.Context, data []byte) error {
	var importData export
	err := json.Unmarshal(data, &importData)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if importData.Version != exportVersion {
		return fmt.Errorf("version %d: %w", importData.Version, ErrBadExportVersion)
	}
	for i := range importData.Players {
		if importData.Players[i].NameKey == "" {
			importData.Players[i].NameKey = normalize.Name(importData.Players[i].Name)
		}
		if importData.Players[i].CreatedAt.IsZero() {
			importData.Players[i].CreatedAt = s.now()
		}
	}
	for i := range importData.Scores {
		if !importData.Scores[i].Game.Valid() {
			return fmt.Errorf("import: unknown game %q: %w", importData.Scores[i].Game, ErrInvalidTime)
		}
		if secs := importData.Scores[i].TimeSecs; secs < 0 || secs > timefmt.MaxSeconds {
			return fmt.Errorf("import: time %d: %w", secs, ErrInvalidTime)
		}
		if !domain.ValidDate(importData.Scores[i].Date) {
			return fmt.Errorf("import: %q: %w", importData.Scores[i].Date, ErrInvalidDate)
		}
		if importData.Scores[i].UpdatedAt.IsZero() {
			importData.Scores[i].UpdatedAt = s.now()
		}
	}

	err = s.scores.Import(ctx, importData.Players, importData.Scores)
	switch {
	case errors.Is(err, storage.ErrConflict):
		return fmt.Errorf("import players: %w", ErrNameTaken)
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("import scores: unknown player: %w", ErrNotFound)
	case err != nil:
		return fmt.Errorf("import: %w", err)
	}
	err = s.refreshPlayers(ctx)
	if err != nil {
		return err
	}
	s.log.WithField("players", len(importData.Players)).
		WithField("scores", len(importData.Scores)).
		Info("import done")
	return nil
}
