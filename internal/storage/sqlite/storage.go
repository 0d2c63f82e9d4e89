package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goserg/puzzleboard/gen/model"
	"github.com/goserg/puzzleboard/gen/table"
	"github.com/goserg/puzzleboard/internal/config"
	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/migrate"
	"github.com/goserg/puzzleboard/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.ScoreStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "storage",
	})
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = migrate.Up(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	err = db.Ping()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	log.WithField("file", cfg.SqliteFile).Info("storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_foreign_keys=on"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		ORDER_BY(table.Players.ID.ASC()).
		QueryContext(ctx, s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(players), nil
}

func (s *Storage) GetPlayer(ctx context.Context, id int) (domain.Player, error) {
	var player model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.ID.EQ(sqlite.Int(int64(id)))).
		QueryContext(ctx, s.db, &player)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Player{}, storage.ErrNotFound
		}
		return domain.Player{}, err
	}
	return convertPlayerToDomain(player), nil
}

func (s *Storage) AddPlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	if player.CreatedAt.IsZero() {
		player.CreatedAt = time.Now()
	}
	res, err := table.Players.
		INSERT(table.Players.MutableColumns).
		MODEL(convertPlayerFromDomain(player)).
		ExecContext(ctx, s.db)
	if err != nil {
		if isConflict(err) {
			return domain.Player{}, storage.ErrConflict
		}
		return domain.Player{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Player{}, err
	}
	s.log.WithField("player", player.Name).Debug("player added")
	return s.GetPlayer(ctx, int(id))
}

func (s *Storage) UpdatePlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	res, err := table.Players.
		UPDATE(table.Players.Name, table.Players.NameKey).
		SET(sqlite.String(player.Name), sqlite.String(player.NameKey)).
		WHERE(table.Players.ID.EQ(sqlite.Int(int64(player.ID)))).
		ExecContext(ctx, s.db)
	if err != nil {
		if isConflict(err) {
			return domain.Player{}, storage.ErrConflict
		}
		return domain.Player{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Player{}, err
	}
	if n == 0 {
		return domain.Player{}, storage.ErrNotFound
	}
	return s.GetPlayer(ctx, player.ID)
}

func (s *Storage) DeletePlayer(ctx context.Context, id int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = table.Scores.
		DELETE().
		WHERE(table.Scores.PlayerID.EQ(sqlite.Int(int64(id)))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	res, err := table.Players.
		DELETE().
		WHERE(table.Players.ID.EQ(sqlite.Int(int64(id)))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return tx.Commit()
}

func importPlayers(ctx context.Context, db qrm.Executable, players []domain.Player) error {
	if len(players) == 0 {
		return nil
	}
	_, err := table.Players.
		INSERT(table.Players.AllColumns).
		MODELS(convertPlayersFromDomain(players)).
		ON_CONFLICT(table.Players.ID).
		DO_UPDATE(sqlite.SET(
			table.Players.Name.SET(table.Players.EXCLUDED.Name),
			table.Players.NameKey.SET(table.Players.EXCLUDED.NameKey),
		)).
		ExecContext(ctx, db)
	if err != nil {
		if isConflict(err) {
			return storage.ErrConflict
		}
		return err
	}
	return nil
}

func (s *Storage) ListScores(ctx context.Context, filter storage.ScoreFilter) ([]domain.Score, error) {
	where := sqlite.Bool(true)
	if filter.Date != "" {
		where = where.AND(table.Scores.Date.EQ(sqlite.String(filter.Date)))
	}
	if filter.From != "" {
		where = where.AND(table.Scores.Date.GT_EQ(sqlite.String(filter.From)))
	}
	if filter.To != "" {
		where = where.AND(table.Scores.Date.LT_EQ(sqlite.String(filter.To)))
	}
	if len(filter.PlayerIDs) > 0 {
		ids := make([]sqlite.Expression, 0, len(filter.PlayerIDs))
		for _, id := range filter.PlayerIDs {
			ids = append(ids, sqlite.Int(int64(id)))
		}
		where = where.AND(table.Scores.PlayerID.IN(ids...))
	}

	var dest []scoreWithPlayer
	err := sqlite.
		SELECT(
			table.Scores.AllColumns,
			table.Players.AllColumns,
		).
		FROM(table.Scores.INNER_JOIN(table.Players, table.Players.ID.EQ(table.Scores.PlayerID))).
		WHERE(where).
		ORDER_BY(
			table.Scores.Date.ASC(),
			table.Scores.PlayerID.ASC(),
			table.Scores.Game.ASC(),
		).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return nil, err
	}
	return convertScoresToDomain(dest), nil
}

func (s *Storage) CountScores(ctx context.Context, playerID int) (int, error) {
	query, args := sqlite.
		SELECT(sqlite.COUNT(table.Scores.PlayerID)).
		FROM(table.Scores).
		WHERE(table.Scores.PlayerID.EQ(sqlite.Int(int64(playerID)))).
		Sql()
	var n int
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Storage) SaveDay(ctx context.Context, playerID int, date string, times map[domain.GameKey]int, cleared []domain.GameKey) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	for _, game := range domain.Games {
		secs, ok := times[game]
		if !ok {
			continue
		}
		_, err = table.Scores.
			INSERT(table.Scores.AllColumns).
			MODEL(model.Scores{
				PlayerID:  int32(playerID),
				Date:      date,
				Game:      string(game),
				TimeSecs:  int32(secs),
				UpdatedAt: now,
			}).
			ON_CONFLICT(table.Scores.PlayerID, table.Scores.Date, table.Scores.Game).
			DO_UPDATE(sqlite.SET(
				table.Scores.TimeSecs.SET(table.Scores.EXCLUDED.TimeSecs),
				table.Scores.UpdatedAt.SET(table.Scores.EXCLUDED.UpdatedAt),
			)).
			ExecContext(ctx, tx)
		if err != nil {
			if isForeignKey(err) {
				return storage.ErrNotFound
			}
			return err
		}
	}

	if len(cleared) > 0 {
		games := make([]sqlite.Expression, 0, len(cleared))
		for _, game := range cleared {
			games = append(games, sqlite.String(string(game)))
		}
		_, err = table.Scores.
			DELETE().
			WHERE(
				table.Scores.PlayerID.EQ(sqlite.Int(int64(playerID))).
					AND(table.Scores.Date.EQ(sqlite.String(date))).
					AND(table.Scores.Game.IN(games...)),
			).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func importScores(ctx context.Context, db qrm.Executable, scores []domain.Score) error {
	if len(scores) == 0 {
		return nil
	}
	_, err := table.Scores.
		INSERT(table.Scores.AllColumns).
		MODELS(convertScoresFromDomain(scores)).
		ON_CONFLICT(table.Scores.PlayerID, table.Scores.Date, table.Scores.Game).
		DO_UPDATE(sqlite.SET(
			table.Scores.TimeSecs.SET(table.Scores.EXCLUDED.TimeSecs),
			table.Scores.UpdatedAt.SET(table.Scores.EXCLUDED.UpdatedAt),
		)).
		ExecContext(ctx, db)
	if err != nil {
		if isForeignKey(err) {
			return storage.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Storage) Import(ctx context.Context, players []domain.Player, scores []domain.Score) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	err = importPlayers(ctx, tx, players)
	if err != nil {
		return err
	}
	err = importScores(ctx, tx, scores)
	if err != nil {
		return err
	}
	err = tx.Commit()
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"players": len(players),
		"scores":  len(scores),
	}).Info("import committed")
	return nil
}
