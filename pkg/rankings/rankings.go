// Package rankings exposes Emojitracker ranking data to Go programs.
//
// Live fetches the current rankings. Running go generate in this directory
// writes snapshot.go, which adds Snapshot: an archived copy of the rankings
// compiled into the package.
package rankings

//go:generate go run ../../cmd -c emojisnap.yaml -o snapshot.go

import (
	"context"
	"fmt"

	"github.com/okian/emojisnap/internal/adapters/decoder"
	"github.com/okian/emojisnap/internal/adapters/http/fetcher"
	"github.com/okian/emojisnap/internal/config"
	"github.com/okian/emojisnap/internal/domain/model"
	"github.com/samber/lo"
)

// Public API endpoints.
const (
	EmojitrackerRankingsURL      = config.EmojitrackerRankingsURL
	EmojitrackerV1APIRankingsURL = config.EmojitrackerV1APIRankingsURL
)

// Ranking is one emoji's popularity entry.
type Ranking struct {
	Char  string
	ID    string
	Name  string
	Score float64
}

// Live retrieves the live rankings from the Emojitracker API endpoint url,
// in the order the API returns them.
func Live(ctx context.Context, url string) ([]Ranking, error) {
	return live(ctx, fetcher.New(), url)
}

func live(ctx context.Context, f fetcher.Fetcher, url string) ([]Ranking, error) {
	body, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("retrieve remote rankings from %s: %w", url, err)
	}

	records, err := decoder.Decode(body)
	if err != nil {
		return nil, err
	}

	if bad, i, found := lo.FindIndexOf(records, func(r model.Ranking) bool {
		_, err := r.ScoreFloat()
		return err != nil
	}); found {
		return nil, fmt.Errorf("rankings: element %d (id %q): score %s out of range", i, bad.ID, bad.Score)
	}

	return lo.Map(records, func(r model.Ranking, _ int) Ranking {
		score, _ := r.ScoreFloat()
		return Ranking{Char: r.Char, ID: r.ID, Name: r.Name, Score: score}
	}), nil
}
