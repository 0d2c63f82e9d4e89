package web

import (
	"errors"

	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/web/webpath"
)

type data struct {
	Title  string
	Button string
	Path   map[string]string
	Games  []domain.GameKey
	Errors []string
	Data   map[string]any
}

func newData(title, button string) data {
	return data{
		Title:  title,
		Button: button,
		Path:   webpath.Path(),
		Games:  domain.Games[:],
		Data:   make(map[string]any),
	}
}

func (m data) With(key string, value any) data {
	if m.Data == nil {
		m.Data = make(map[string]any)
	}
	m.Data[key] = value
	return m
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

func (m data) WithErrors(err error) data {
	if err == nil {
		return m
	}
	for _, err := range unwrap(err) {
		m.Errors = append(m.Errors, err.Error())
	}
	return m
}
