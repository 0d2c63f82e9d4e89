//go:build e2e

package e2e

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goserg/puzzleboard/internal/e2e/sel"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/suite"
)

var binary string

func init() {
	flag.StringVar(&binary, "binary", "../../bin/server", "path to the server binary")
}

const (
	port = 3917
	base = "http://127.0.0.1:3917"
)

type BrowserSuite struct {
	suite.Suite
	process *Process
}

func TestBrowser(t *testing.T) {
	suite.Run(t, new(BrowserSuite))
}

func (s *BrowserSuite) SetupSuite() {
	dir := s.T().TempDir()
	serverConfig := filepath.Join(dir, "server.toml")
	botConfig := filepath.Join(dir, "bot.toml")
	s.Require().NoError(os.WriteFile(serverConfig, []byte(fmt.Sprintf(
		"host = %q\nport = %d\nsqlite_file = %q\n", "127.0.0.1", port, filepath.Join(dir, "e2e.sqlite"),
	)), 0o600))
	s.Require().NoError(os.WriteFile(botConfig, []byte("enabled = false\n"), 0o600))

	p := NewProcess(context.Background(), binary,
		"-server-config", serverConfig,
		"-bot-config", botConfig)
	s.process = p
	s.Require().NoError(p.Start(context.Background()), "cant start process")

	if err := WaitForStartup(base+"/today", 5*time.Second); err != nil {
		s.T().Fatalf("unable to start app: %v\n%s", err, p.Output())
	}
}

func (s *BrowserSuite) TearDownSuite() {
	exitCode, err := s.process.Stop()
	if err != nil {
		s.T().Logf("cant stop process: %v", err)
	}
	s.T().Logf("process finished with code %d", exitCode)
}

func (s *BrowserSuite) TestPuzzleDay() {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	ctx, cancel = chromedp.NewContext(ctx)
	defer cancel()

	var players, board, totals string
	err := chromedp.Run(ctx,
		s.checkStatus(base+"/", http.StatusOK),
		s.checkStatus(base+"/stats", http.StatusOK),
		s.checkStatus(base+"/ratings", http.StatusOK),
		s.checkStatus(base+"/today?date=2024-02-30", http.StatusBadRequest),

		s.addPlayer("Alex"),
		s.addPlayer("Tim"),
		chromedp.Text(sel.PlayerList, &players, chromedp.ByQuery),

		s.submitTimes("2024-03-01", "1", "1:05", "0:45", "2:00"),
		s.submitTimes("2024-03-01", "2", "1:10", "0:45", ""),
		chromedp.Text(sel.Board, &board, chromedp.ByQuery),

		chromedp.Navigate(base+"/scoreboard?a=1&b=2"),
		chromedp.Text(sel.ScoreboardSum, &totals, chromedp.ByQuery),
	)
	if err != nil {
		s.screenshot(ctx, "puzzle_day.png")
		s.T().Fatal(err)
	}
	s.Contains(players, "Alex")
	s.Contains(players, "Tim")
	s.Contains(board, "1:05")
	s.Contains(board, "3:50")
	s.Equal("Alex 2 : 1 Tim", strings.TrimSpace(totals))
}

func (s *BrowserSuite) addPlayer(name string) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.Navigate(base + "/players"),
		chromedp.SendKeys(sel.NewPlayerName, name, chromedp.ByQuery),
		chromedp.Click(sel.NewPlayerSubmit, chromedp.ByQuery),
		chromedp.WaitVisible(sel.PlayerList, chromedp.ByQuery),
	}
}

func (s *BrowserSuite) submitTimes(date, playerID, zip, sudoku, queens string) chromedp.Tasks {
	tasks := chromedp.Tasks{
		chromedp.Navigate(base + "/today?date=" + date),
		chromedp.SetValue(sel.SubmitPlayer, playerID, chromedp.ByQuery),
	}
	for field, value := range map[string]string{sel.SubmitZip: zip, sel.SubmitSudoku: sudoku, sel.SubmitQueens: queens} {
		if value != "" {
			tasks = append(tasks, chromedp.SendKeys(field, value, chromedp.ByQuery))
		}
	}
	return append(tasks,
		chromedp.Click(sel.SubmitSave, chromedp.ByQuery),
		chromedp.WaitVisible(sel.Board, chromedp.ByQuery),
	)
}

func (s *BrowserSuite) checkStatus(path string, want int) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			resp, err := chromedp.RunResponse(ctx, chromedp.Navigate(path))
			if err != nil {
				return err
			}
			if int(resp.Status) != want {
				return fmt.Errorf("%s answered %d, want %d", path, resp.Status, want)
			}
			return nil
		}),
	}
}

func (s *BrowserSuite) screenshot(ctx context.Context, name string) {
	var shot []byte
	if err := chromedp.Run(ctx, chromedp.FullScreenshot(&shot, 80)); err != nil {
		s.T().Logf("screenshot: %v", err)
		return
	}
	if err := os.WriteFile(name, shot, 0o644); err != nil {
		s.T().Logf("screenshot: %v", err)
	}
}
