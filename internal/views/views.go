// Package views renders the HTML fragments the page swaps in: feed rows,
// comment threads, market and calendar cards, the profile pane. Rendering
// is always a full replace of the owning container, and user content goes
// through the template engine's contextual escaping.
package views

import (
	"bytes"
	"html/template"
	"sort"

	"github.com/ecetuna/finfeed/internal/domain"
	"github.com/ecetuna/finfeed/internal/rating"
)

// Placeholders shown instead of an empty container.
const (
	EmptyFeed          = "Henüz gönderi yok. İlk sen ol! 🚀"
	EmptyPostComments  = "Henüz yorum yok. İlk yorumu sen yap! 💬"
	EmptyAssetComments = "Henüz yorum yok 💬"
	EmptyProfilePosts  = "Henüz gönderi yok."
	Unavailable        = "Veri yüklenemedi"
)

type star struct {
	Pos    int
	Filled bool
}

type starControl struct {
	Kind rating.Kind
	ID   int64
	Avg  float64
	// Fill is the resting fill level the page script restores to after a
	// hover preview ends.
	Fill    int
	Count   int
	Stars   []star
	Summary string
}

func newStarControl(kind rating.Kind, id int64, avg float64, count int) starControl {
	c := rating.New(kind, id, avg, count)
	stars := make([]star, rating.MaxStars)
	for i := range stars {
		stars[i] = star{Pos: i + 1, Filled: i+1 <= c.Fill()}
	}
	return starControl{
		Kind:    kind,
		ID:      id,
		Avg:     avg,
		Fill:    c.Fill(),
		Count:   count,
		Stars:   stars,
		Summary: c.Summary(),
	}
}

type postRow struct {
	domain.Post
	Owner  bool
	Rating starControl
}

type commentRow struct {
	domain.Comment
	Owner  bool
	Rating starControl
}

type marketCard struct {
	Symbol string
	domain.MarketEntry
}

type calendarCard struct {
	domain.CalendarEntry
	// Next is the meeting date when one is set, the release date otherwise.
	Next string
}

type profileView struct {
	domain.Profile
	JoinedYear string
	Owner      bool
	Posts      []postRow
}

func render(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Feed renders the global feed. Edit and delete controls only appear on
// posts whose author is the viewer, compared by exact username.
func Feed(posts []domain.Post, viewer string) (template.HTML, error) {
	if len(posts) == 0 {
		return render("placeholder", EmptyFeed)
	}
	rows := make([]postRow, len(posts))
	for i, p := range posts {
		rows[i] = postRow{
			Post:   p,
			Owner:  viewer != "" && p.User == viewer,
			Rating: newStarControl(rating.KindPost, p.ID, p.RatingAvg, p.RatingCount),
		}
	}
	return render("feed", rows)
}

// PostDetail renders the single-post card inside the post modal.
func PostDetail(post domain.Post) (template.HTML, error) {
	row := postRow{
		Post:   post,
		Rating: newStarControl(rating.KindPost, post.ID, post.RatingAvg, post.RatingCount),
	}
	return render("post-detail", row)
}

func PostComments(comments []domain.Comment, viewer string) (template.HTML, error) {
	return commentList(comments, viewer, rating.KindPostComment, EmptyPostComments)
}

func AssetComments(comments []domain.Comment, viewer string) (template.HTML, error) {
	return commentList(comments, viewer, rating.KindAssetComment, EmptyAssetComments)
}

func commentList(comments []domain.Comment, viewer string, kind rating.Kind, empty string) (template.HTML, error) {
	if len(comments) == 0 {
		return render("placeholder", empty)
	}
	rows := make([]commentRow, len(comments))
	for i, c := range comments {
		rows[i] = commentRow{
			Comment: c,
			Owner:   viewer != "" && c.Username == viewer,
			Rating:  newStarControl(kind, c.ID, c.RatingAvg, c.RatingCount),
		}
	}
	return render("comments", rows)
}

// Market renders the asset cards. Entries arrive as a map keyed by symbol;
// cards are ordered by key so refreshes do not shuffle the board.
func Market(entries map[string]domain.MarketEntry) (template.HTML, error) {
	if len(entries) == 0 {
		return render("placeholder", Unavailable)
	}
	cards := make([]marketCard, 0, len(entries))
	for symbol, e := range entries {
		cards = append(cards, marketCard{Symbol: symbol, MarketEntry: e})
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].Symbol < cards[j].Symbol })
	return render("market", cards)
}

func Calendar(entries map[string]domain.CalendarEntry) (template.HTML, error) {
	if len(entries) == 0 {
		return render("placeholder", Unavailable)
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cards := make([]calendarCard, 0, len(entries))
	for _, k := range keys {
		e := entries[k]
		next := e.NextMeeting
		if next == "" {
			next = e.NextRelease
		}
		cards = append(cards, calendarCard{CalendarEntry: e, Next: next})
	}
	return render("calendar", cards)
}

// Profile renders the profile pane with the user's own post list.
func Profile(p domain.Profile, viewer string) (template.HTML, error) {
	view := profileView{
		Profile: p,
		Owner:   viewer != "" && p.Username == viewer,
	}
	if len(p.JoinedDate) >= 4 {
		view.JoinedYear = p.JoinedDate[:4]
	}
	view.Posts = make([]postRow, len(p.Posts))
	for i, post := range p.Posts {
		if post.User == "" {
			post.User = p.Username
		}
		view.Posts[i] = postRow{
			Post:   post,
			Owner:  viewer != "" && p.Username == viewer,
			Rating: newStarControl(rating.KindPost, post.ID, post.RatingAvg, post.RatingCount),
		}
	}
	return render("profile", view)
}
