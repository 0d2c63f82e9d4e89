package web

import (
	"errors"
	"testing"

	"github.com/goserg/puzzleboard/internal/domain"
)

func Test_submitScoresRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     submitScoresRequest
		wantErr []error
	}{
		{
			name: "valid",
			req: submitScoresRequest{
				PlayerID: 1,
				Date:     "2024-03-01",
				Times:    map[domain.GameKey]string{domain.Zip: "1:05", domain.Queens: ""},
			},
		},
		{
			name: "missing player",
			req: submitScoresRequest{
				Date:  "2024-03-01",
				Times: map[domain.GameKey]string{domain.Zip: "1:05"},
			},
			wantErr: []error{ErrMissingPlayer},
		},
		{
			name: "bad date",
			req: submitScoresRequest{
				PlayerID: 1,
				Date:     "01.03.2024",
				Times:    map[domain.GameKey]string{domain.Zip: "1:05"},
			},
			wantErr: []error{ErrBadDate},
		},
		{
			name:    "everything wrong",
			req:     submitScoresRequest{},
			wantErr: []error{ErrMissingPlayer, ErrMissingDate, ErrNoTimes},
		},
		{
			name: "unknown game",
			req: submitScoresRequest{
				PlayerID: 1,
				Date:     "2024-03-01",
				Times:    map[domain.GameKey]string{"CHESS": "10"},
			},
			wantErr: []error{ErrUnknownGame},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if (err != nil) != (len(tt.wantErr) > 0) {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("Validate() error = %v, want %v", err, want)
				}
			}
		})
	}
}

func Test_playerRequest_Validate(t *testing.T) {
	if err := (playerRequest{Name: " \t"}).Validate(); !errors.Is(err, ErrMissingName) {
		t.Errorf("Validate() error = %v, want %v", err, ErrMissingName)
	}
	if err := (playerRequest{Name: "Alex"}).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
