package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/goserg/puzzleboard/internal/config"
	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/storage"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	ctx context.Context
	s   *Storage
}

func TestStorage(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	l, _ := test.NewNullLogger()
	st, err := New(l, config.Server{SqliteFile: filepath.Join(s.T().TempDir(), "test.sqlite")})
	s.Require().NoError(err)
	s.s = st
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	s.Require().NoError(s.s.Close())
}

func (s *StorageSuite) addPlayer(name string) domain.Player {
	p, err := s.s.AddPlayer(s.ctx, domain.Player{Name: name, NameKey: name})
	s.Require().NoError(err)
	return p
}

func (s *StorageSuite) TestPlayers() {
	alex := s.addPlayer("alex")
	tim := s.addPlayer("tim")
	s.NotZero(alex.ID)
	s.NotEqual(alex.ID, tim.ID)
	s.False(alex.CreatedAt.IsZero())

	_, err := s.s.AddPlayer(s.ctx, domain.Player{Name: "Alex", NameKey: "alex"})
	s.ErrorIs(err, storage.ErrConflict)

	got, err := s.s.GetPlayer(s.ctx, tim.ID)
	s.Require().NoError(err)
	s.Equal("tim", got.Name)

	_, err = s.s.GetPlayer(s.ctx, 999)
	s.ErrorIs(err, storage.ErrNotFound)

	renamed, err := s.s.UpdatePlayer(s.ctx, domain.Player{ID: tim.ID, Name: "Timothy", NameKey: "timothy"})
	s.Require().NoError(err)
	s.Equal("Timothy", renamed.Name)

	_, err = s.s.UpdatePlayer(s.ctx, domain.Player{ID: tim.ID, Name: "alex", NameKey: "alex"})
	s.ErrorIs(err, storage.ErrConflict)

	_, err = s.s.UpdatePlayer(s.ctx, domain.Player{ID: 999, Name: "x", NameKey: "x"})
	s.ErrorIs(err, storage.ErrNotFound)

	players, err := s.s.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *StorageSuite) TestSaveDay() {
	alex := s.addPlayer("alex")
	tim := s.addPlayer("tim")

	s.Require().NoError(s.s.SaveDay(s.ctx, alex.ID, "2024-03-01", map[domain.GameKey]int{
		domain.Zip:    100,
		domain.Queens: 50,
	}, nil))
	s.Require().NoError(s.s.SaveDay(s.ctx, tim.ID, "2024-03-01", map[domain.GameKey]int{
		domain.Zip: 90,
	}, nil))
	s.Require().NoError(s.s.SaveDay(s.ctx, alex.ID, "2024-03-02", map[domain.GameKey]int{
		domain.MiniSudoku: 70,
	}, nil))

	// upsert one game, clear another
	s.Require().NoError(s.s.SaveDay(s.ctx, alex.ID, "2024-03-01", map[domain.GameKey]int{
		domain.Zip: 80,
	}, []domain.GameKey{domain.Queens}))

	scores, err := s.s.ListScores(s.ctx, storage.ScoreFilter{Date: "2024-03-01"})
	s.Require().NoError(err)
	s.Require().Len(scores, 2)
	rows := domain.Rows(scores)
	s.Contains(rows, domain.ScoreRow{PlayerID: alex.ID, PlayerName: "alex", Date: "2024-03-01", Game: domain.Zip, TimeSecs: 80})
	s.Contains(rows, domain.ScoreRow{PlayerID: tim.ID, PlayerName: "tim", Date: "2024-03-01", Game: domain.Zip, TimeSecs: 90})

	scores, err = s.s.ListScores(s.ctx, storage.ScoreFilter{From: "2024-03-02", To: "2024-03-31"})
	s.Require().NoError(err)
	s.Require().Len(scores, 1)
	s.Equal(domain.MiniSudoku, scores[0].Game)

	scores, err = s.s.ListScores(s.ctx, storage.ScoreFilter{PlayerIDs: []int{tim.ID}})
	s.Require().NoError(err)
	s.Len(scores, 1)

	n, err := s.s.CountScores(s.ctx, alex.ID)
	s.Require().NoError(err)
	s.Equal(2, n)

	err = s.s.SaveDay(s.ctx, 999, "2024-03-01", map[domain.GameKey]int{domain.Zip: 1}, nil)
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	alex := s.addPlayer("alex")
	s.Require().NoError(s.s.SaveDay(s.ctx, alex.ID, "2024-03-01", map[domain.GameKey]int{domain.Zip: 100}, nil))

	s.Require().NoError(s.s.DeletePlayer(s.ctx, alex.ID))
	s.ErrorIs(s.s.DeletePlayer(s.ctx, alex.ID), storage.ErrNotFound)

	scores, err := s.s.ListScores(s.ctx, storage.ScoreFilter{})
	s.Require().NoError(err)
	s.Empty(scores)
}

func (s *StorageSuite) TestImport() {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	players := []domain.Player{
		{ID: 7, Name: "Alex", NameKey: "alex", CreatedAt: created},
		{ID: 9, Name: "Tim", NameKey: "tim", CreatedAt: created},
	}
	s.Require().NoError(s.s.Import(s.ctx, players, []domain.Score{
		{ScoreRow: domain.ScoreRow{PlayerID: 7, Date: "2024-03-01", Game: domain.Zip, TimeSecs: 10}, UpdatedAt: created},
		{ScoreRow: domain.ScoreRow{PlayerID: 9, Date: "2024-03-01", Game: domain.Zip, TimeSecs: 20}, UpdatedAt: created},
	}))

	// importing again is an upsert
	s.Require().NoError(s.s.Import(s.ctx, players, nil))

	got, err := s.s.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(7, got[0].ID)
	s.True(created.Equal(got[0].CreatedAt))

	scores, err := s.s.ListScores(s.ctx, storage.ScoreFilter{})
	s.Require().NoError(err)
	s.Len(scores, 2)

	next := s.addPlayer("sam")
	s.Greater(next.ID, 9)

	err = s.s.Import(s.ctx,
		[]domain.Player{{ID: 11, Name: "Kim", NameKey: "kim", CreatedAt: created}},
		[]domain.Score{
			{ScoreRow: domain.ScoreRow{PlayerID: 11, Date: "2024-03-02", Game: domain.Zip, TimeSecs: 5}, UpdatedAt: created},
			{ScoreRow: domain.ScoreRow{PlayerID: 404, Date: "2024-03-01", Game: domain.Zip, TimeSecs: 1}, UpdatedAt: created},
		})
	s.ErrorIs(err, storage.ErrNotFound)

	// the failed import leaves nothing behind
	_, err = s.s.GetPlayer(s.ctx, 11)
	s.ErrorIs(err, storage.ErrNotFound)
	scores, err = s.s.ListScores(s.ctx, storage.ScoreFilter{Date: "2024-03-02"})
	s.Require().NoError(err)
	s.Empty(scores)
}

func (s *StorageSuite) TestSubscribers() {
	s.Require().NoError(s.s.Subscribe(s.ctx, domain.Subscriber{ChatID: 42, FirstName: "Alex"}))
	s.Require().NoError(s.s.Subscribe(s.ctx, domain.Subscriber{ChatID: 7, Username: "tim"}))
	s.Require().NoError(s.s.Subscribe(s.ctx, domain.Subscriber{ChatID: 42, FirstName: "Alexander"}))

	subs, err := s.s.ListSubscribers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(subs, 2)
	s.Equal(int64(7), subs[0].ChatID)
	s.Equal("tim", subs[0].Username)
	s.Equal(int64(42), subs[1].ChatID)
	s.Equal("Alexander", subs[1].FirstName)

	s.Require().NoError(s.s.Unsubscribe(s.ctx, 42))
	s.Require().NoError(s.s.Unsubscribe(s.ctx, 42))
	subs, err = s.s.ListSubscribers(s.ctx)
	s.Require().NoError(err)
	s.Len(subs, 1)
}
