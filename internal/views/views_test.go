package views

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ecetuna/finfeed/internal/domain"
)

func post(id int64, user string) domain.Post {
	return domain.Post{
		ID: id, User: user, Avatar: "🦊", Content: "içerik",
		Timestamp: "2025-01-10 09:30", CommentCount: 1,
		RatingAvg: 4.2, RatingCount: 5,
	}
}

func TestFeedRowCount(t *testing.T) {
	posts := []domain.Post{post(1, "ayse"), post(2, "mehmet"), post(3, "ayse")}
	html, err := Feed(posts, "")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(html), `class="post"`); got != 3 {
		t.Errorf("expected 3 rows, got %d", got)
	}
}

func TestEmptyFeedPlaceholder(t *testing.T) {
	html, err := Feed(nil, "ayse")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), EmptyFeed) {
		t.Errorf("empty feed must render the placeholder, got %q", html)
	}
}

func TestOwnershipGating(t *testing.T) {
	posts := []domain.Post{post(1, "ayse"), post(2, "mehmet")}

	html, err := Feed(posts, "ayse")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(html), `data-action="delete-post"`); got != 1 {
		t.Errorf("expected delete control only on the viewer's post, got %d", got)
	}

	html, err = Feed(posts, "")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(html), "delete-post") {
		t.Error("anonymous viewer must not see delete controls")
	}
}

func TestUserContentIsEscaped(t *testing.T) {
	p := post(1, "ayse")
	p.Content = `<script>alert("x")</script> "quoted"`
	html, err := Feed([]domain.Post{p}, "")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(html), "<script>") {
		t.Error("markup in user content leaked unescaped")
	}
}

func TestStarFill(t *testing.T) {
	cases := []struct {
		avg    float64
		count  int
		filled int
		text   string
	}{
		{4.2, 5, 4, "4.2 • 5 oy"},
		{4.5, 2, 5, "4.5 • 2 oy"},
		{0, 0, 0, "Henüz oy yok"},
		{1.4, 1, 1, "1.4 • 1 oy"},
	}
	for _, c := range cases {
		p := post(1, "ayse")
		p.RatingAvg, p.RatingCount = c.avg, c.count
		html, err := Feed([]domain.Post{p}, "")
		if err != nil {
			t.Fatal(err)
		}
		if got := strings.Count(string(html), `class="star filled"`); got != c.filled {
			t.Errorf("avg %.1f: expected %d filled stars, got %d", c.avg, c.filled, got)
		}
		// The resting fill the page restores to after a hover preview.
		if want := fmt.Sprintf(`data-fill="%d"`, c.filled); !strings.Contains(string(html), want) {
			t.Errorf("avg %.1f: %s missing", c.avg, want)
		}
		if !strings.Contains(string(html), c.text) {
			t.Errorf("avg %.1f: summary %q missing", c.avg, c.text)
		}
	}
}

func TestCommentPlaceholders(t *testing.T) {
	html, _ := PostComments(nil, "")
	if !strings.Contains(string(html), EmptyPostComments) {
		t.Error("post comment placeholder missing")
	}
	html, _ = AssetComments(nil, "")
	if !strings.Contains(string(html), EmptyAssetComments) {
		t.Error("asset comment placeholder missing")
	}
}

func TestCommentOwnership(t *testing.T) {
	comments := []domain.Comment{
		{ID: 7, Username: "ayse", Content: "yorum", RatingAvg: 3, RatingCount: 1},
		{ID: 8, Username: "mehmet", Content: "yorum", RatingAvg: 3, RatingCount: 1},
	}
	html, err := AssetComments(comments, "mehmet")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(html), `data-action="delete-comment"`); got != 1 {
		t.Errorf("expected 1 delete control, got %d", got)
	}
}

func TestMarketOrderIsStable(t *testing.T) {
	entries := map[string]domain.MarketEntry{
		"usdtry":  {Name: "Dolar/TL", Value: "35,80 ₺", Logo: "💲"},
		"bitcoin": {Name: "Bitcoin", Value: "$95,800", Logo: "🟠"},
	}
	html, err := Market(entries)
	if err != nil {
		t.Fatal(err)
	}
	s := string(html)
	if strings.Index(s, "bitcoin") > strings.Index(s, "usdtry") {
		t.Error("market cards must be ordered by symbol")
	}
}

func TestCalendarNextDateFallback(t *testing.T) {
	entries := map[string]domain.CalendarEntry{
		"fed": {Name: "FED Faiz Oranı", NextMeeting: "29 Ocak 2025", Color: "#10b981"},
		"cpi": {Name: "ABD Enflasyon (CPI)", NextRelease: "12 Şubat 2025", Color: "#f59e0b"},
	}
	html, err := Calendar(entries)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "29 Ocak 2025") || !strings.Contains(string(html), "12 Şubat 2025") {
		t.Errorf("meeting/release dates missing: %q", html)
	}
}

func TestProfile(t *testing.T) {
	p := domain.Profile{
		Username: "ayse", FullName: "Ayşe Yılmaz", Bio: "piyasa takipçisi",
		Avatar: "🦊", JoinedDate: "2024-03-01", TotalPosts: 2, TotalComments: 9,
		Posts: []domain.Post{post(1, "ayse"), post(2, "ayse")},
	}
	html, err := Profile(p, "ayse")
	if err != nil {
		t.Fatal(err)
	}
	s := string(html)
	if !strings.Contains(s, "2024 yılından beri üye") {
		t.Error("joined year missing")
	}
	if got := strings.Count(s, `class="post"`); got != 2 {
		t.Errorf("expected 2 profile posts, got %d", got)
	}
	if !strings.Contains(s, `data-action="edit-profile"`) {
		t.Error("owner must see the profile edit control")
	}

	html, err = Profile(domain.Profile{Username: "ayse", JoinedDate: "2024-03-01"}, "mehmet")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(html), "edit-profile") {
		t.Error("non-owner must not see the profile edit control")
	}
	if !strings.Contains(string(html), EmptyProfilePosts) {
		t.Error("empty profile post list placeholder missing")
	}
}
