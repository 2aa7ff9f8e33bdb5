package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ecetuna/finfeed/internal/domain"
)

func (c *Client) CheckSession(ctx context.Context) (domain.Session, error) {
	var s domain.Session
	err := c.do(ctx, http.MethodGet, "/api/check-session", nil, nil, &s)
	return s, err
}

type credentials struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, fullName, username, password string) (string, error) {
	return c.authenticate(ctx, "/api/register", credentials{fullName, username, password})
}

func (c *Client) Login(ctx context.Context, fullName, username, password string) (string, error) {
	return c.authenticate(ctx, "/api/login", credentials{fullName, username, password})
}

func (c *Client) authenticate(ctx context.Context, path string, creds credentials) (string, error) {
	res, content, err := c.roundTrip(ctx, http.MethodPost, path, nil, creds)
	if err != nil {
		return "", err
	}
	if err := remoteError(content); err != nil {
		return "", err
	}
	return c.sessionToken(res), nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/logout", nil, nil, nil)
}

func (c *Client) Feed(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	err := c.do(ctx, http.MethodGet, "/api/feed", nil, nil, &posts)
	return posts, err
}

func (c *Client) CreatePost(ctx context.Context, content string) error {
	payload := map[string]string{"content": content}
	return c.do(ctx, http.MethodPost, "/api/post", nil, payload, nil)
}

func (c *Client) UpdatePost(ctx context.Context, id int64, content string) error {
	payload := map[string]string{"content": content}
	return c.do(ctx, http.MethodPut, "/api/post/"+strconv.FormatInt(id, 10), nil, payload, nil)
}

func (c *Client) DeletePost(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/post/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) PostComments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := c.do(ctx, http.MethodGet, "/api/post-comments/"+strconv.FormatInt(postID, 10), nil, nil, &comments)
	return comments, err
}

func (c *Client) CreatePostComment(ctx context.Context, postID int64, content string) error {
	payload := map[string]any{"post_id": postID, "content": content}
	return c.do(ctx, http.MethodPost, "/api/post-comment", nil, payload, nil)
}

func (c *Client) DeletePostComment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/post-comment/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) AssetComments(ctx context.Context, symbol string) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := c.do(ctx, http.MethodGet, "/api/asset-comments/"+symbol, nil, nil, &comments)
	return comments, err
}

func (c *Client) CreateAssetComment(ctx context.Context, symbol, content string) error {
	payload := map[string]string{"symbol": symbol, "content": content}
	return c.do(ctx, http.MethodPost, "/api/asset-comment", nil, payload, nil)
}

func (c *Client) DeleteAssetComment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/asset-comment/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (c *Client) RatePost(ctx context.Context, id int64, rating int) error {
	payload := map[string]any{"post_id": id, "rating": rating}
	return c.do(ctx, http.MethodPost, "/api/rate-post", nil, payload, nil)
}

func (c *Client) RatePostComment(ctx context.Context, id int64, rating int) error {
	payload := map[string]any{"comment_id": id, "rating": rating}
	return c.do(ctx, http.MethodPost, "/api/rate-post-comment", nil, payload, nil)
}

func (c *Client) RateAssetComment(ctx context.Context, id int64, rating int) error {
	payload := map[string]any{"comment_id": id, "rating": rating}
	return c.do(ctx, http.MethodPost, "/api/rate-asset-comment", nil, payload, nil)
}

func (c *Client) Profile(ctx context.Context, username string) (domain.Profile, error) {
	var p domain.Profile
	err := c.do(ctx, http.MethodGet, "/api/profile/"+username, nil, nil, &p)
	return p, err
}

func (c *Client) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	return c.do(ctx, http.MethodPost, "/api/profile/update", nil, update, nil)
}

func (c *Client) EconomicCalendar(ctx context.Context) (map[string]domain.CalendarEntry, error) {
	var calendar map[string]domain.CalendarEntry
	err := c.do(ctx, http.MethodGet, "/api/economic-calendar", nil, nil, &calendar)
	return calendar, err
}

func (c *Client) MarketData(ctx context.Context) (map[string]domain.MarketEntry, error) {
	var market map[string]domain.MarketEntry
	err := c.do(ctx, http.MethodGet, "/api/market-data", nil, nil, &market)
	return market, err
}

func (c *Client) Candlesticks(ctx context.Context, symbol, period string) (domain.CandleSeries, error) {
	var series domain.CandleSeries
	query := url.Values{"period": []string{period}}
	err := c.do(ctx, http.MethodGet, "/api/candlestick/"+symbol, query, nil, &series)
	return series, err
}
