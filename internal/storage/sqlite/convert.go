package sqlite

import (
	"errors"

	"github.com/goserg/puzzleboard/gen/model"
	"github.com/goserg/puzzleboard/internal/domain"

	"github.com/mattn/go-sqlite3"
)

type scoreWithPlayer struct {
	model.Scores
	Player model.Players
}

func convertPlayerToDomain(player model.Players) domain.Player {
	return domain.Player{
		ID:        int(player.ID),
		Name:      player.Name,
		NameKey:   player.NameKey,
		CreatedAt: player.CreatedAt,
	}
}

func convertPlayersToDomain(players []model.Players) []domain.Player {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		converted = append(converted, convertPlayerToDomain(player))
	}
	return converted
}

func convertPlayerFromDomain(player domain.Player) model.Players {
	return model.Players{
		ID:        int32(player.ID),
		Name:      player.Name,
		NameKey:   player.NameKey,
		CreatedAt: player.CreatedAt,
	}
}

func convertPlayersFromDomain(players []domain.Player) []model.Players {
	converted := make([]model.Players, 0, len(players))
	for _, player := range players {
		converted = append(converted, convertPlayerFromDomain(player))
	}
	return converted
}

func convertScoresToDomain(scores []scoreWithPlayer) []domain.Score {
	converted := make([]domain.Score, 0, len(scores))
	for _, score := range scores {
		converted = append(converted, domain.Score{
			ScoreRow: domain.ScoreRow{
				PlayerID:   int(score.PlayerID),
				PlayerName: score.Player.Name,
				Date:       score.Date,
				Game:       domain.GameKey(score.Game),
				TimeSecs:   int(score.TimeSecs),
			},
			UpdatedAt: score.UpdatedAt,
		})
	}
	return converted
}

func convertScoresFromDomain(scores []domain.Score) []model.Scores {
	converted := make([]model.Scores, 0, len(scores))
	for _, score := range scores {
		converted = append(converted, model.Scores{
			PlayerID:  int32(score.PlayerID),
			Date:      score.Date,
			Game:      string(score.Game),
			TimeSecs:  int32(score.TimeSecs),
			UpdatedAt: score.UpdatedAt,
		})
	}
	return converted
}

func isConflict(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

func isForeignKey(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}
