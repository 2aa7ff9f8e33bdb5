package poll

import (
	"context"
	"html/template"

	"github.com/rs/zerolog/log"

	"github.com/ecetuna/finfeed/internal/snapshot"
	"github.com/ecetuna/finfeed/internal/state"
	"github.com/ecetuna/finfeed/internal/views"
)

// StartBackground arms the three fixed-interval refreshes: economic
// calendar, market board and global feed. Each renders the shared,
// anonymous-viewer fragment into the snapshot store.
func StartBackground(s *Scheduler, st *state.State) {
	s.Every(snapshot.ViewCalendar, st.Config.CalendarRefresh, refreshCalendar(st))
	s.Every(snapshot.ViewMarket, st.Config.MarketRefresh, refreshMarket(st))
	s.Every(snapshot.ViewFeed, st.Config.FeedRefresh, refreshFeed(st))
}

func publish(st *state.State, view string, seq uint64, html template.HTML) {
	if !st.Snapshots.Publish(view, seq, html) {
		log.Debug().Str("view", view).Msg("stale refresh discarded")
	}
}

func refreshCalendar(st *state.State) Task {
	return func(ctx context.Context) error {
		seq := st.Snapshots.Begin(snapshot.ViewCalendar)
		entries, err := st.Backend.EconomicCalendar(ctx)
		if err != nil {
			return err
		}
		html, err := views.Calendar(entries)
		if err != nil {
			return err
		}
		publish(st, snapshot.ViewCalendar, seq, html)
		return nil
	}
}

func refreshMarket(st *state.State) Task {
	return func(ctx context.Context) error {
		seq := st.Snapshots.Begin(snapshot.ViewMarket)
		entries, err := st.Backend.MarketData(ctx)
		if err != nil {
			return err
		}
		html, err := views.Market(entries)
		if err != nil {
			return err
		}
		publish(st, snapshot.ViewMarket, seq, html)
		return nil
	}
}

func refreshFeed(st *state.State) Task {
	return func(ctx context.Context) error {
		seq := st.Snapshots.Begin(snapshot.ViewFeed)
		posts, err := st.Backend.Feed(ctx)
		if err != nil {
			return err
		}
		html, err := views.Feed(posts, "")
		if err != nil {
			return err
		}
		publish(st, snapshot.ViewFeed, seq, html)
		return nil
	}
}
