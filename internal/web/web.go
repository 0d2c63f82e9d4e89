package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strings"
	"time"

	embedded "github.com/goserg/puzzleboard"
	"github.com/goserg/puzzleboard/internal/config"
	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/metrics"
	"github.com/goserg/puzzleboard/internal/service"
	"github.com/goserg/puzzleboard/internal/timefmt"
	"github.com/goserg/puzzleboard/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Server struct {
	svc     *service.Service
	metrics *metrics.Metrics
	app     *fiber.App
	cfg     config.Server
	log     *logrus.Entry
}

func New(l *logrus.Logger, svc *service.Service, m *metrics.Metrics, cfg config.Server) (*Server, error) {
	server := Server{
		svc:     svc,
		metrics: m,
		cfg:     cfg,
		log: l.WithFields(map[string]interface{}{
			"from": "web",
		}),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatSeconds", timefmt.Format[int])
	engine.AddFunc("FormatAverage", timefmt.Format[float64])
	engine.AddFunc("FormatTrend", timefmt.Delta)
	engine.AddFunc("GameLabel", domain.GameKey.Label)

	app := fiber.New(fiber.Config{
		Views:                 engine,
		ErrorHandler:          server.handleError,
		DisableStartupMessage: true,
	})
	app.Use(server.requestLogger)

	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Today)
	})
	app.Get(webpath.Today, server.handleToday)
	app.Post(webpath.Today, server.handleTodayPost)
	app.Get(webpath.History, server.handleHistory)
	app.Get(webpath.Stats, server.handleStats)
	app.Get(webpath.Scoreboard, server.handleScoreboard)
	app.Get(webpath.Players, server.handlePlayers)
	app.Post(webpath.Players, server.handlePlayersPost)
	app.Get(webpath.Ratings, server.handleRatings)
	metricsHandler := m.Handler()
	app.Get(webpath.Metrics, func(ctx *fiber.Ctx) error {
		metricsHandler(ctx.Context())
		return nil
	})

	app.Get(webpath.ApiPlayers, server.apiListPlayers)
	app.Post(webpath.ApiPlayers, server.apiCreatePlayer)
	app.Put(webpath.ApiPlayer, server.apiRenamePlayer)
	app.Delete(webpath.ApiPlayer, server.apiDeletePlayer)
	app.Get(webpath.ApiScores, server.apiScores)
	app.Post(webpath.ApiScores, server.apiSubmitScores)
	app.Get(webpath.ApiHistory, server.apiHistory)
	app.Get(webpath.ApiStats, server.apiStats)
	app.Get(webpath.ApiScoreboard, server.apiScoreboard)
	app.Get(webpath.ApiRatings, server.apiRatings)
	app.Get(webpath.ApiExport, server.apiExport)
	app.Post(webpath.ApiImport, server.apiImport)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	s.log.WithFields(logrus.Fields{
		"addr": s.cfg.Addr(),
		"tls":  s.cfg.TLS(),
	}).Info("listening")
	if s.cfg.TLS() {
		return s.app.ListenTLS(s.cfg.Addr(), s.cfg.CertFile, s.cfg.KeyFile)
	}
	return s.app.Listen(s.cfg.Addr())
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) requestLogger(ctx *fiber.Ctx) error {
	id := ctx.Get(fiber.HeaderXRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	ctx.Set(fiber.HeaderXRequestID, id)

	start := time.Now()
	if chainErr := ctx.Next(); chainErr != nil {
		if err := ctx.App().ErrorHandler(ctx, chainErr); err != nil {
			_ = ctx.SendStatus(fiber.StatusInternalServerError)
		}
	}
	took := time.Since(start)
	status := ctx.Response().StatusCode()

	s.metrics.ObserveRequest(ctx.Route().Path, ctx.Method(), status, took)
	entry := s.log.WithFields(logrus.Fields{
		"request_id": id,
		"method":     ctx.Method(),
		"path":       ctx.Path(),
		"status":     status,
		"took":       took,
	})
	if status >= fiber.StatusInternalServerError {
		entry.Warn("request failed")
		return nil
	}
	entry.Debug("request")
	return nil
}

func statusOf(err error) int {
	var fe *fiber.Error
	var ve validationError
	switch {
	case errors.As(err, &ve):
		return fiber.StatusBadRequest
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrNameTaken),
		errors.Is(err, service.ErrHasScores):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidTime),
		errors.Is(err, service.ErrEmptyName),
		errors.Is(err, service.ErrSamePlayer),
		errors.Is(err, service.ErrBadExportVersion):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

var errInternal = errors.New("internal error")

// validationError marks a malformed request. It keeps the joined causes so
// pages can list each of them.
type validationError struct {
	err error
}

func (e validationError) Error() string { return e.err.Error() }

func (e validationError) Unwrap() error { return e.err }

func badRequest(err error) error {
	return validationError{err: err}
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	code := statusOf(err)
	shown := err
	if code == fiber.StatusInternalServerError {
		s.log.WithError(err).WithField("path", ctx.Path()).Error("internal error")
		shown = errInternal
	}

	if strings.HasPrefix(ctx.Path(), webpath.Api) {
		return ctx.Status(code).JSON(errorResponse{Error: shown.Error()})
	}
	return ctx.Status(code).Render("error", newData("Error", "").
		WithErrors(shown).
		With("Code", code), "layouts/main")
}
