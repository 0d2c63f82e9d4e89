package storage

import (
	"context"

	"github.com/goserg/puzzleboard/internal/domain"
)

type PlayerStorage interface {
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	GetPlayer(ctx context.Context, id int) (domain.Player, error)
	AddPlayer(ctx context.Context, player domain.Player) (domain.Player, error)
	UpdatePlayer(ctx context.Context, player domain.Player) (domain.Player, error)
	// DeletePlayer removes the player together with all of their scores.
	DeletePlayer(ctx context.Context, id int) error
}

type ScoreStorage interface {
	ListScores(ctx context.Context, filter ScoreFilter) ([]domain.Score, error)
	CountScores(ctx context.Context, playerID int) (int, error)
	// SaveDay upserts times and removes cleared games of one player's day
	// atomically.
	SaveDay(ctx context.Context, playerID int, date string, times map[domain.GameKey]int, cleared []domain.GameKey) error

	// Import upserts players and then scores in one transaction. Nothing is
	// kept when any row fails.
	Import(ctx context.Context, players []domain.Player, scores []domain.Score) error
}

type SubscriberStorage interface {
	ListSubscribers(ctx context.Context) ([]domain.Subscriber, error)
	// Subscribe is idempotent; a repeated call refreshes the names.
	Subscribe(ctx context.Context, sub domain.Subscriber) error
	Unsubscribe(ctx context.Context, chatID int64) error
}
