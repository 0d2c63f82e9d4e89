package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goserg/puzzleboard/internal/cache/mem"
	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/elo"
	"github.com/goserg/puzzleboard/internal/headtohead"
	"github.com/goserg/puzzleboard/internal/normalize"
	"github.com/goserg/puzzleboard/internal/stats"
	"github.com/goserg/puzzleboard/internal/storage"
	"github.com/goserg/puzzleboard/internal/timefmt"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTime      = errors.New("invalid time")
	ErrEmptyName        = errors.New("empty name")
	ErrNameTaken        = errors.New("name already taken")
	ErrHasScores        = errors.New("player has scores")
	ErrSamePlayer       = errors.New("players must differ")
	ErrNotFound         = errors.New("not found")
	ErrBadExportVersion = errors.New("invalid export file version")
)

// Submission describes a saved day of one player. Games holds the day's
// state after the save.
type Submission struct {
	Player  domain.Player        `json:"player"`
	Date    string               `json:"date"`
	Games   domain.PerGame[*int] `json:"games"`
	Overall *int                 `json:"overall"`
}

type SubmitListener func(Submission)

type Service struct {
	players storage.PlayerStorage
	scores  storage.ScoreStorage
	cache   *mem.Cache
	log     *logrus.Entry
	now     func() time.Time

	mu        sync.RWMutex
	listeners []SubmitListener
}

func New(l *logrus.Logger, players storage.PlayerStorage, scores storage.ScoreStorage) *Service {
	return &Service{
		players: players,
		scores:  scores,
		cache:   mem.New(),
		log: l.WithFields(map[string]interface{}{
			"from": "service",
		}),
		now: time.Now,
	}
}

// Today is the current local date.
func (s *Service) Today() string {
	return domain.FormatDate(s.now())
}

// OnSubmit registers fn to be called after every successful SubmitTimes.
func (s *Service) OnSubmit(fn SubmitListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Service) notify(sub Submission) {
	s.mu.RLock()
	listeners := make([]SubmitListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(sub)
	}
}

func (s *Service) refreshPlayers(ctx context.Context) error {
	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		s.cache.Invalidate()
		return err
	}
	s.cache.Update(players)
	return nil
}

func (s *Service) ensureCache(ctx context.Context) error {
	if s.cache.Valid() {
		return nil
	}
	return s.refreshPlayers(ctx)
}

// ListPlayers returns all players sorted by name.
func (s *Service) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	if err := s.ensureCache(ctx); err != nil {
		return nil, err
	}
	return s.cache.List(), nil
}

func (s *Service) GetPlayer(ctx context.Context, id int) (domain.Player, error) {
	if err := s.ensureCache(ctx); err != nil {
		return domain.Player{}, err
	}
	p, ok := s.cache.GetPlayer(id)
	if !ok {
		return domain.Player{}, fmt.Errorf("player %d: %w", id, ErrNotFound)
	}
	return p, nil
}

// PlayerByName finds a player by case-folded name.
func (s *Service) PlayerByName(ctx context.Context, name string) (domain.Player, error) {
	if err := s.ensureCache(ctx); err != nil {
		return domain.Player{}, err
	}
	p, ok := s.cache.GetPlayerByName(name)
	if !ok {
		return domain.Player{}, fmt.Errorf("player %q: %w", strings.TrimSpace(name), ErrNotFound)
	}
	return p, nil
}

func (s *Service) CreatePlayer(ctx context.Context, name string) (domain.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Player{}, ErrEmptyName
	}
	p, err := s.players.AddPlayer(ctx, domain.Player{
		Name:      name,
		NameKey:   normalize.Name(name),
		CreatedAt: s.now(),
	})
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return domain.Player{}, fmt.Errorf("%q: %w", name, ErrNameTaken)
		}
		return domain.Player{}, err
	}
	s.log.WithField("player", p.Name).Info("player created")
	return p, s.refreshPlayers(ctx)
}

func (s *Service) RenamePlayer(ctx context.Context, id int, name string) (domain.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Player{}, ErrEmptyName
	}
	p, err := s.players.UpdatePlayer(ctx, domain.Player{
		ID:      id,
		Name:    name,
		NameKey: normalize.Name(name),
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			return domain.Player{}, fmt.Errorf("%q: %w", name, ErrNameTaken)
		case errors.Is(err, storage.ErrNotFound):
			return domain.Player{}, fmt.Errorf("player %d: %w", id, ErrNotFound)
		}
		return domain.Player{}, err
	}
	s.log.WithFields(logrus.Fields{"id": id, "player": p.Name}).Info("player renamed")
	return p, s.refreshPlayers(ctx)
}

// DeletePlayer removes a player. A player with scores is only removed when
// deleteScores is set, and the scores go with them.
func (s *Service) DeletePlayer(ctx context.Context, id int, deleteScores bool) error {
	n, err := s.scores.CountScores(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 && !deleteScores {
		return fmt.Errorf("player %d has %d scores: %w", id, n, ErrHasScores)
	}
	err = s.players.DeletePlayer(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("player %d: %w", id, ErrNotFound)
		}
		return err
	}
	s.log.WithFields(logrus.Fields{"id": id, "scores": n}).Info("player deleted")
	return s.refreshPlayers(ctx)
}

func validDate(date string) error {
	if !domain.ValidDate(date) {
		return fmt.Errorf("%q: %w", date, ErrInvalidDate)
	}
	return nil
}

// ScoresOn lists the scores of one date ordered by player name then game.
func (s *Service) ScoresOn(ctx context.Context, date string) ([]domain.Score, error) {
	if err := validDate(date); err != nil {
		return nil, err
	}
	scores, err := s.scores.ListScores(ctx, storage.ScoreFilter{Date: date})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(scores, func(i, j int) bool {
		gi, _ := scores[i].Game.Index()
		gj, _ := scores[j].Game.Index()
		return gi < gj
	})
	normalize.SortByName(scores, func(sc domain.Score) string { return sc.PlayerName })
	return scores, nil
}

// Day is the board of a single date.
func (s *Service) Day(ctx context.Context, date string) (stats.DailyView, error) {
	scores, err := s.ScoresOn(ctx, date)
	if err != nil {
		return stats.DailyView{}, err
	}
	views := stats.BuildDailyView(domain.Rows(scores))
	if len(views) == 0 {
		return stats.DailyView{Date: date}, nil
	}
	return views[0], nil
}

// SubmitTimes saves a player's times for a date. A blank time removes that
// game's score. Nothing is saved when any time fails to parse.
func (s *Service) SubmitTimes(ctx context.Context, playerID int, date string, times map[domain.GameKey]string) (Submission, error) {
	if err := validDate(date); err != nil {
		return Submission{}, err
	}
	player, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return Submission{}, err
	}

	parsed := make(map[domain.GameKey]int, len(times))
	var cleared []domain.GameKey
	var errs []error
	for _, game := range sortedGames(times) {
		text := strings.TrimSpace(times[game])
		if !game.Valid() {
			errs = append(errs, fmt.Errorf("unknown game %q: %w", game, ErrInvalidTime))
			continue
		}
		if text == "" || text == timefmt.Placeholder {
			cleared = append(cleared, game)
			continue
		}
		secs, ok := timefmt.Parse(text)
		if !ok || secs < 0 {
			errs = append(errs, fmt.Errorf("%s %q: %w", game.Label(), text, ErrInvalidTime))
			continue
		}
		parsed[game] = secs
	}
	if len(errs) > 0 {
		return Submission{}, errors.Join(errs...)
	}

	err = s.scores.SaveDay(ctx, playerID, date, parsed, cleared)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Submission{}, fmt.Errorf("player %d: %w", playerID, ErrNotFound)
		}
		return Submission{}, err
	}

	saved, err := s.scores.ListScores(ctx, storage.ScoreFilter{Date: date, PlayerIDs: []int{playerID}})
	if err != nil {
		return Submission{}, err
	}
	sub := Submission{Player: player, Date: date}
	for _, view := range stats.BuildDailyView(domain.Rows(saved)) {
		for _, entry := range view.Players {
			sub.Games = entry.Games
			sub.Overall = entry.Overall
		}
	}
	s.log.WithFields(logrus.Fields{
		"player":  player.Name,
		"date":    date,
		"saved":   len(parsed),
		"cleared": len(cleared),
	}).Info("times submitted")
	s.notify(sub)
	return sub, nil
}

// sortedGames orders keys by game order; unknown keys go last.
func sortedGames(times map[domain.GameKey]string) []domain.GameKey {
	keys := make([]domain.GameKey, 0, len(times))
	for k := range times {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		gi, oki := keys[i].Index()
		gj, okj := keys[j].Index()
		if oki != okj {
			return oki
		}
		if !oki {
			return keys[i] < keys[j]
		}
		return gi < gj
	})
	return keys
}

// History returns the daily views between from and to inclusive, newest
// first.
func (s *Service) History(ctx context.Context, from, to string) ([]stats.DailyView, error) {
	if err := validDate(from); err != nil {
		return nil, err
	}
	if err := validDate(to); err != nil {
		return nil, err
	}
	if from > to {
		return nil, fmt.Errorf("%s after %s: %w", from, to, ErrInvalidDate)
	}
	scores, err := s.scores.ListScores(ctx, storage.ScoreFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	return stats.BuildDailyView(domain.Rows(scores)), nil
}

func (s *Service) Stats(ctx context.Context) (stats.Report, error) {
	scores, err := s.scores.ListScores(ctx, storage.ScoreFilter{})
	if err != nil {
		return stats.Report{}, err
	}
	return stats.Compute(domain.Rows(scores)), nil
}

func (s *Service) PlayerStats(ctx context.Context, id int) (stats.PlayerStats, error) {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		return stats.PlayerStats{}, err
	}
	// wins depend on everyone's times, so the report covers all players
	scores, err := s.scores.ListScores(ctx, storage.ScoreFilter{})
	if err != nil {
		return stats.PlayerStats{}, err
	}
	ps, ok := stats.Compute(domain.Rows(scores)).Player(id)
	if !ok {
		return stats.PlayerStats{PlayerID: player.ID, PlayerName: player.Name}, nil
	}
	return ps, nil
}

func (s *Service) Scoreboard(ctx context.Context, a, b int) (headtohead.Scoreboard, error) {
	if a == b {
		return headtohead.Scoreboard{}, ErrSamePlayer
	}
	playerA, err := s.GetPlayer(ctx, a)
	if err != nil {
		return headtohead.Scoreboard{}, err
	}
	playerB, err := s.GetPlayer(ctx, b)
	if err != nil {
		return headtohead.Scoreboard{}, err
	}
	scores, err := s.scores.ListScores(ctx, storage.ScoreFilter{PlayerIDs: []int{a, b}})
	if err != nil {
		return headtohead.Scoreboard{}, err
	}
	return headtohead.Compute(domain.Rows(scores), playerA.Side(), playerB.Side()), nil
}

func (s *Service) Ratings(ctx context.Context) ([]elo.Rating, error) {
	scores, err := s.scores.ListScores(ctx, storage.ScoreFilter{})
	if err != nil {
		return nil, err
	}
	return elo.Ladder(domain.Rows(scores)), nil
}
