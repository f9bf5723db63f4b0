package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"tarkov_market/internal/domain/value"
	"tarkov_market/internal/worker"
)

type fakeIndex struct {
	mu     sync.Mutex
	warmed []value.Language
	fail   value.Language
}

func (f *fakeIndex) Warm(_ context.Context, langs ...value.Language) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, lang := range langs {
		if lang == f.fail {
			return errors.New("upstream unavailable")
		}

		f.warmed = append(f.warmed, lang)
	}

	return nil
}

func TestQuestIndexWarmer(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name      string
		languages []value.Language
		fail      value.Language
		warmed    []value.Language
		wantErr   bool
	}{
		{
			name:   "Default languages",
			warmed: []value.Language{value.LanguageJA, value.LanguageEN},
		},
		{
			name:      "Custom languages",
			languages: []value.Language{value.LanguageEN},
			warmed:    []value.Language{value.LanguageEN},
		},
		{
			name:    "One language fails",
			fail:    value.LanguageJA,
			warmed:  []value.Language{value.LanguageEN},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			index := &fakeIndex{fail: tc.fail}

			warmer := worker.NewQuestIndexWarmer(index)
			if tc.languages != nil {
				warmer = warmer.WithLanguages(tc.languages...)
			}

			err := warmer.Job(context.Background())
			if tc.wantErr {
				rq.Error(err)
			} else {
				rq.NoError(err)
			}

			rq.Equal(tc.warmed, index.warmed)
		})
	}
}
