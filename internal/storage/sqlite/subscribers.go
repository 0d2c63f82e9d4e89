package sqlite

import (
	"context"
	"time"

	"github.com/goserg/puzzleboard/gen/model"
	"github.com/goserg/puzzleboard/gen/table"
	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/storage"

	"github.com/go-jet/jet/v2/sqlite"
)

var _ storage.SubscriberStorage = (*Storage)(nil)

func (s *Storage) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	var subs []model.Subscribers
	err := table.Subscribers.
		SELECT(table.Subscribers.AllColumns).
		FROM(table.Subscribers).
		ORDER_BY(table.Subscribers.ChatID.ASC()).
		QueryContext(ctx, s.db, &subs)
	if err != nil {
		return nil, err
	}
	converted := make([]domain.Subscriber, 0, len(subs))
	for _, sub := range subs {
		converted = append(converted, domain.Subscriber{
			ChatID:    sub.ChatID,
			FirstName: sub.FirstName,
			Username:  sub.Username,
			CreatedAt: sub.CreatedAt,
		})
	}
	return converted, nil
}

func (s *Storage) Subscribe(ctx context.Context, sub domain.Subscriber) error {
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	_, err := table.Subscribers.
		INSERT(table.Subscribers.AllColumns).
		MODEL(model.Subscribers{
			ChatID:    sub.ChatID,
			FirstName: sub.FirstName,
			Username:  sub.Username,
			CreatedAt: sub.CreatedAt,
		}).
		ON_CONFLICT(table.Subscribers.ChatID).
		DO_UPDATE(sqlite.SET(
			table.Subscribers.FirstName.SET(table.Subscribers.EXCLUDED.FirstName),
			table.Subscribers.Username.SET(table.Subscribers.EXCLUDED.Username),
		)).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	s.log.WithField("chat_id", sub.ChatID).Debug("subscribed")
	return nil
}

func (s *Storage) Unsubscribe(ctx context.Context, chatID int64) error {
	_, err := table.Subscribers.
		DELETE().
		WHERE(table.Subscribers.ChatID.EQ(sqlite.Int(chatID))).
		ExecContext(ctx, s.db)
	return err
}
