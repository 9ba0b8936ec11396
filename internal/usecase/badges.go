package usecase

import (
	"context"
	"fmt"

	"github.com/naka-gawa/github-badges/internal/render"
)

// Kind names a badge type. The values double as the HTTP route suffixes.
type Kind string

const (
	KindStats         Kind = "stats"
	KindLanguages     Kind = "langs"
	KindContributions Kind = "contrib"
	KindSnake         Kind = "snake"
)

// Kinds lists every badge type in route order.
func Kinds() []Kind {
	return []Kind{KindStats, KindLanguages, KindContributions, KindSnake}
}

// ParseKind validates a badge type name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown badge type %q", s)
}

// BadgeRequest is the input shared by all badge types.
type BadgeRequest struct {
	Username string
	Theme    string
	// Year is accepted by the contributions badge but has no effect.
	Year string
}

// RenderBadge runs the fetch, aggregate and render pipeline for one badge.
func (a *Aggregator) RenderBadge(ctx context.Context, kind Kind, req BadgeRequest) ([]byte, error) {
	theme := render.LookupTheme(req.Theme)

	switch kind {
	case KindStats:
		stats, err := a.UserStats(ctx, req.Username)
		if err != nil {
			return nil, err
		}
		return render.Stats(*stats, theme)

	case KindLanguages:
		langs, err := a.TopLanguages(ctx, req.Username)
		if err != nil {
			return nil, err
		}
		return render.Languages(req.Username, langs, theme)

	case KindContributions:
		cal, err := a.Contributions(ctx, req.Username, req.Year)
		if err != nil {
			return nil, err
		}
		return render.Heatmap(req.Username, cal.Weeks, MaxDailyContribution(cal.Weeks), theme, render.DefaultGrid)

	case KindSnake:
		cal, err := a.Contributions(ctx, req.Username, "")
		if err != nil {
			return nil, err
		}
		return render.Snake(cal.Weeks, theme, render.DefaultGrid)
	}

	return nil, fmt.Errorf("unknown badge type %q", kind)
}
