package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSubmit(t *testing.T) {
	m := New()
	zip, queens, overall := 10, 20, 30

	sub := service.Submission{Date: "2024-03-01"}
	sub.Games.Set(domain.Zip, &zip)
	sub.Games.Set(domain.Queens, &queens)
	m.ObserveSubmit(sub)

	sub.Overall = &overall
	m.ObserveSubmit(sub)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissions))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.timesSaved.WithLabelValues("ZIP")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.timesSaved.WithLabelValues("MINI_SUDOKU")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.completeDays))
}

func TestObserveRequestAndCommands(t *testing.T) {
	m := New()
	m.ObserveRequest("/api/stats", "GET", 200, 15*time.Millisecond)
	m.ObserveRequest("/api/stats", "GET", 200, 5*time.Millisecond)
	m.ObserveCommand("top", nil)
	m.ObserveCommand("times", errors.New("boom"))
	m.ObserveNotification(nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/stats", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.botCommands.WithLabelValues("times", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.botNotification.WithLabelValues("ok")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpDuration))
}
