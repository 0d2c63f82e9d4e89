package tgbot

import (
	"context"
	"errors"
	"sort"

	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/elo"
	"github.com/goserg/puzzleboard/internal/headtohead"
	"github.com/goserg/puzzleboard/internal/service"
	"github.com/goserg/puzzleboard/internal/stats"

	mapset "github.com/deckarep/golang-set/v2"
)

// Board is the part of the service the bot reads from and submits to.
type Board interface {
	Today() string
	Day(ctx context.Context, date string) (stats.DailyView, error)
	PlayerByName(ctx context.Context, name string) (domain.Player, error)
	Stats(ctx context.Context) (stats.Report, error)
	PlayerStats(ctx context.Context, id int) (stats.PlayerStats, error)
	Scoreboard(ctx context.Context, a, b int) (headtohead.Scoreboard, error)
	Ratings(ctx context.Context) ([]elo.Rating, error)
	SubmitTimes(ctx context.Context, playerID int, date string, times map[domain.GameKey]string) (service.Submission, error)
}

var _ Board = (*service.Service)(nil)

type Role int

const (
	RoleAdmin Role = iota + 1
	RoleUser
)

var (
	everyone   = mapset.NewSet[Role](RoleAdmin, RoleUser)
	adminsOnly = mapset.NewSet[Role](RoleAdmin)
)

// Chat is the sender of a command.
type Chat struct {
	ID        int64
	UserID    int64
	FirstName string
	Username  string
	Role      Role
}

type Command interface {
	Run(ctx context.Context, chat Chat, args string) (string, error)
	Help() string
	Permission() mapset.Set[Role]
}

type Commands struct {
	list map[string]Command
}

func NewCommands(board Board, subs *subscriptions) *Commands {
	hc := &HelpCommand{}
	c := Commands{
		list: map[string]Command{
			"help":  hc,
			"start": hc,
			"today": &TodayCommand{board: board},
			"stats": &StatsCommand{board: board},
			"h2h":   &H2HCommand{board: board},
			"top":   &TopCommand{board: board},
			"times": &TimesCommand{board: board},
			"sub":   &SubCommand{subs: subs},
			"unsub": &UnsubCommand{subs: subs},
		},
	}
	hc.commands = c.list
	return &c
}

// Known reports whether name is a registered command.
func (c *Commands) Known(name string) bool {
	_, ok := c.list[name]
	return ok
}

func (c *Commands) RunCommand(ctx context.Context, chat Chat, name, args string) (string, error) {
	command, ok := c.list[name]
	if !ok || !command.Permission().Contains(chat.Role) {
		return "", ErrBadRequest
	}
	return command.Run(ctx, chat, args)
}

// visible returns the command names role may run, sorted.
func visible(commands map[string]Command, role Role) []string {
	names := make([]string, 0, len(commands))
	for name, command := range commands {
		if command.Permission().Contains(role) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// userFacing reports whether err is safe to show in a reply.
func userFacing(err error) bool {
	for _, target := range []error{
		ErrBadRequest,
		ErrUsage,
		ErrNothingToSave,
		service.ErrInvalidDate,
		service.ErrInvalidTime,
		service.ErrEmptyName,
		service.ErrSamePlayer,
		service.ErrNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
