package tgbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/timefmt"

	mapset "github.com/deckarep/golang-set/v2"
)

type TimesCommand struct {
	board Board
}

type timesArgs struct {
	name  string
	date  string
	times map[domain.GameKey]string
}

// parseTimesArgs reads "<name> <zip> <sudoku> <queens> [date]". A "-" leaves
// the stored time of that game untouched.
func parseTimesArgs(args, today string) (timesArgs, error) {
	fields := strings.Fields(args)
	if len(fields) < 1+domain.GameCount || len(fields) > 2+domain.GameCount {
		return timesArgs{}, ErrUsage
	}
	parsed := timesArgs{
		name:  fields[0],
		date:  today,
		times: make(map[domain.GameKey]string, domain.GameCount),
	}
	for i, game := range domain.Games {
		value := fields[i+1]
		if value == timefmt.Placeholder {
			continue
		}
		parsed.times[game] = value
	}
	if len(fields) == 2+domain.GameCount {
		parsed.date = fields[len(fields)-1]
	}
	if len(parsed.times) == 0 {
		return timesArgs{}, ErrNothingToSave
	}
	return parsed, nil
}

func (c *TimesCommand) Run(ctx context.Context, _ Chat, args string) (string, error) {
	parsed, err := parseTimesArgs(args, c.board.Today())
	if err != nil {
		return "", fmt.Errorf("/times %s: %w", c.Help(), err)
	}
	player, err := c.board.PlayerByName(ctx, parsed.name)
	if err != nil {
		return "", err
	}
	sub, err := c.board.SubmitTimes(ctx, player.ID, parsed.date, parsed.times)
	if err != nil {
		return "", err
	}
	return "Saved. " + formatSubmission(sub), nil
}

func (c *TimesCommand) Help() string {
	return "<name> <zip> <sudoku> <queens> [YYYY-MM-DD] saves times, - skips a game"
}

func (c *TimesCommand) Permission() mapset.Set[Role] {
	return adminsOnly
}
