package tgbot

import (
	"context"
	"sort"

	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
)

// subscriptions mirrors the stored subscribers in a thread-safe set.
type subscriptions struct {
	chats mapset.Set[int64]
	store storage.SubscriberStorage
}

func newSubs(ctx context.Context, store storage.SubscriberStorage) (*subscriptions, error) {
	subs, err := store.ListSubscribers(ctx)
	if err != nil {
		return nil, err
	}
	chats := mapset.NewSet[int64]()
	for _, sub := range subs {
		chats.Add(sub.ChatID)
	}
	return &subscriptions{
		chats: chats,
		store: store,
	}, nil
}

func (s *subscriptions) Add(ctx context.Context, sub domain.Subscriber) error {
	err := s.store.Subscribe(ctx, sub)
	if err != nil {
		return err
	}
	s.chats.Add(sub.ChatID)
	return nil
}

func (s *subscriptions) Remove(ctx context.Context, chatID int64) error {
	err := s.store.Unsubscribe(ctx, chatID)
	if err != nil {
		return err
	}
	s.chats.Remove(chatID)
	return nil
}

func (s *subscriptions) Contains(chatID int64) bool {
	return s.chats.Contains(chatID)
}

func (s *subscriptions) ChatIDs() []int64 {
	ids := s.chats.ToSlice()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
