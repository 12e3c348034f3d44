package identification

import (
	"context"
	"errors"

	"hoarder/internal/identification/tmdb"
)

// TMDBLookup adapts the TMDB client to the Lookup interface.
type TMDBLookup struct {
	Client *tmdb.Client
}

// Search runs a TMDB movie search and keeps TMDB's ranking.
func (l TMDBLookup) Search(ctx context.Context, query string) ([]Candidate, error) {
	if l.Client == nil {
		return nil, errors.New("tmdb client is nil")
	}
	response, err := l.Client.SearchMovie(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]Candidate, 0, len(response.Results))
	for _, result := range response.Results {
		title := result.Title
		if title == "" {
			title = result.OriginalTitle
		}
		out = append(out, Candidate{Title: title, ReleaseDate: result.ReleaseDate})
	}
	return out, nil
}
