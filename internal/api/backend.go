package api

import (
	"context"

	"github.com/ecetuna/finfeed/internal/domain"
)

// Backend is the fixed REST contract of the feed/market server. One method
// per endpoint; every call is a single attempt with no retry, and aggregate
// fields (rating averages, comment counts) are only ever read from here,
// never computed locally.
type Backend interface {
	// WithSession returns a view of the backend that sends the given
	// session cookie with every request. An empty token means anonymous.
	WithSession(token string) Backend

	CheckSession(ctx context.Context) (domain.Session, error)
	// Register and Login return the backend session cookie on success so
	// the caller can persist it.
	Register(ctx context.Context, fullName, username, password string) (string, error)
	Login(ctx context.Context, fullName, username, password string) (string, error)
	Logout(ctx context.Context) error

	Feed(ctx context.Context) ([]domain.Post, error)
	CreatePost(ctx context.Context, content string) error
	UpdatePost(ctx context.Context, id int64, content string) error
	DeletePost(ctx context.Context, id int64) error

	PostComments(ctx context.Context, postID int64) ([]domain.Comment, error)
	CreatePostComment(ctx context.Context, postID int64, content string) error
	DeletePostComment(ctx context.Context, id int64) error

	AssetComments(ctx context.Context, symbol string) ([]domain.Comment, error)
	CreateAssetComment(ctx context.Context, symbol, content string) error
	DeleteAssetComment(ctx context.Context, id int64) error

	RatePost(ctx context.Context, id int64, rating int) error
	RatePostComment(ctx context.Context, id int64, rating int) error
	RateAssetComment(ctx context.Context, id int64, rating int) error

	Profile(ctx context.Context, username string) (domain.Profile, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error

	EconomicCalendar(ctx context.Context) (map[string]domain.CalendarEntry, error)
	MarketData(ctx context.Context) (map[string]domain.MarketEntry, error)
	Candlesticks(ctx context.Context, symbol, period string) (domain.CandleSeries, error)
}
