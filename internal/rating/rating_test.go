package rating_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ecetuna/finfeed/internal/mocks"
	"github.com/ecetuna/finfeed/internal/rating"
)

var ctx = context.Background()

func TestPreviewAndReset(t *testing.T) {
	cases := []struct {
		name    string
		avg     float64
		hover   int
		preview int
		reset   int
	}{
		{"hover above average", 2.2, 5, 5, 2},
		{"hover below average", 4.8, 1, 1, 5},
		{"half rounds up", 3.5, 2, 2, 4},
		{"no votes", 0, 3, 3, 0},
		{"hover clamped high", 4.0, 9, 5, 4},
		{"hover clamped low", 4.0, 0, 1, 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := rating.New(rating.KindPost, 1, c.avg, 3)
			ctrl.Preview(c.hover)
			if got := ctrl.Fill(); got != c.preview {
				t.Errorf("preview fill = %d, want %d", got, c.preview)
			}
			ctrl.Reset()
			if got := ctrl.Fill(); got != c.reset {
				t.Errorf("reset fill = %d, want %d", got, c.reset)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	c := rating.New(rating.KindPost, 1, 4.25, 12)
	if got := c.Summary(); got != "4.2 • 12 oy" {
		t.Errorf("summary = %q", got)
	}

	c = rating.New(rating.KindPost, 1, 0, 0)
	if got := c.Summary(); got != "Henüz oy yok" {
		t.Errorf("empty summary = %q", got)
	}
}

func TestSubmitRouting(t *testing.T) {
	cases := []struct {
		kind    rating.Kind
		refresh rating.Refresh
		expect  func(*mocks.MockBackend)
	}{
		{rating.KindPost, rating.RefreshFeed, func(b *mocks.MockBackend) {
			b.EXPECT().RatePost(gomock.Any(), int64(7), 4).Return(nil)
		}},
		{rating.KindPostComment, rating.RefreshPostComments, func(b *mocks.MockBackend) {
			b.EXPECT().RatePostComment(gomock.Any(), int64(7), 4).Return(nil)
		}},
		{rating.KindAssetComment, rating.RefreshAssetComments, func(b *mocks.MockBackend) {
			b.EXPECT().RateAssetComment(gomock.Any(), int64(7), 4).Return(nil)
		}},
	}

	for _, c := range cases {
		t.Run(string(c.kind), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			backend := mocks.NewMockBackend(ctrl)
			c.expect(backend)

			refresh, err := rating.Submit(ctx, backend, c.kind, 7, 4)
			if err != nil {
				t.Fatal(err)
			}
			if refresh != c.refresh {
				t.Errorf("refresh = %v, want %v", refresh, c.refresh)
			}
		})
	}
}

func TestSubmitRejectsOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	// No EXPECT calls: an invalid vote must never reach the backend.

	for _, stars := range []int{0, 6, -2} {
		if _, err := rating.Submit(ctx, backend, rating.KindPost, 7, stars); !errors.Is(err, rating.ErrInvalidRating) {
			t.Errorf("stars %d: expected ErrInvalidRating, got %v", stars, err)
		}
	}
}

func TestSubmitPropagatesBackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().RatePost(gomock.Any(), int64(7), 5).Return(errors.New("Giriş yapmalısınız"))

	refresh, err := rating.Submit(ctx, backend, rating.KindPost, 7, 5)
	if err == nil {
		t.Fatal("expected backend error")
	}
	if refresh != rating.RefreshNone {
		t.Error("no refresh must be requested on failure")
	}
}
