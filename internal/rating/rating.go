// Package rating models the five-star control attached to posts and
// comments. The control only displays server-computed aggregates; a vote
// never changes the shown average locally, it schedules a re-fetch of the
// view that owns the target instead.
package rating

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ecetuna/finfeed/internal/api"
)

// Kind identifies what a star control is attached to.
type Kind string

const (
	KindPost         Kind = "post"
	KindPostComment  Kind = "post-comment"
	KindAssetComment Kind = "asset-comment"
)

// Refresh names the view that must be re-fetched after a vote so the new
// server-side aggregate becomes visible.
type Refresh int

const (
	RefreshNone Refresh = iota
	RefreshFeed
	RefreshPostComments
	RefreshAssetComments
)

const MaxStars = 5

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Control is the view state of one star widget.
type Control struct {
	Kind  Kind
	ID    int64
	Avg   float64
	Count int

	fill int
}

func New(kind Kind, id int64, avg float64, count int) Control {
	c := Control{Kind: kind, ID: id, Avg: avg, Count: count}
	c.Reset()
	return c
}

// Fill is the number of filled stars currently shown, in [0,5].
func (c *Control) Fill() int {
	return c.fill
}

// Preview fills the control up to the hovered star. Star positions are
// 1-indexed; values outside 1..5 are clamped.
func (c *Control) Preview(star int) {
	if star < 1 {
		star = 1
	}
	if star > MaxStars {
		star = MaxStars
	}
	c.fill = star
}

// Reset restores the fill to the rounded server average, as when the
// pointer leaves the control.
func (c *Control) Reset() {
	fill := int(math.Round(c.Avg))
	if fill < 0 {
		fill = 0
	}
	if fill > MaxStars {
		fill = MaxStars
	}
	c.fill = fill
}

// Summary is the text next to the stars: average to one decimal plus the
// vote count, or the no-votes placeholder.
func (c *Control) Summary() string {
	if c.Count <= 0 {
		return "Henüz oy yok"
	}
	return fmt.Sprintf("%.1f • %d oy", c.Avg, c.Count)
}

// Submit sends one vote for the target and reports which view has to be
// re-fetched to pick up the new aggregate.
func Submit(ctx context.Context, backend api.Backend, kind Kind, id int64, stars int) (Refresh, error) {
	if stars < 1 || stars > MaxStars {
		return RefreshNone, ErrInvalidRating
	}

	switch kind {
	case KindPost:
		if err := backend.RatePost(ctx, id, stars); err != nil {
			return RefreshNone, err
		}
		return RefreshFeed, nil
	case KindPostComment:
		if err := backend.RatePostComment(ctx, id, stars); err != nil {
			return RefreshNone, err
		}
		return RefreshPostComments, nil
	case KindAssetComment:
		if err := backend.RateAssetComment(ctx, id, stars); err != nil {
			return RefreshNone, err
		}
		return RefreshAssetComments, nil
	default:
		return RefreshNone, fmt.Errorf("unknown rating target %q", kind)
	}
}
