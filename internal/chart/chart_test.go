package chart

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ecetuna/finfeed/internal/domain"
)

var ctx = context.Background()

type fakeSource struct {
	series domain.CandleSeries
	err    error
	calls  int
}

func (s *fakeSource) Candlesticks(ctx context.Context, symbol, period string) (domain.CandleSeries, error) {
	s.calls++
	if s.err != nil {
		return domain.CandleSeries{}, s.err
	}
	out := s.series
	out.Symbol = symbol
	out.Period = period
	return out, nil
}

type fakeInstance struct {
	factory   *fakeFactory
	candles   []Point
	volume    []VolumeBar
	fits      int
	width     int
	height    int
	destroyed bool
}

func (i *fakeInstance) SetCandles(candles []Point) { i.candles = candles }
func (i *fakeInstance) SetVolume(bars []VolumeBar) { i.volume = bars }
func (i *fakeInstance) FitContent()                { i.fits++ }
func (i *fakeInstance) Resize(w, h int)            { i.width, i.height = w, h }
func (i *fakeInstance) Destroy() {
	if i.destroyed {
		i.factory.t.Error("instance destroyed twice")
	}
	i.destroyed = true
	i.factory.live--
}

type fakeFactory struct {
	t         *testing.T
	live      int
	created   []*fakeInstance
	createErr error
}

func (f *fakeFactory) Create(width, height int) (Instance, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	inst := &fakeInstance{factory: f, width: width, height: height}
	f.live++
	f.created = append(f.created, inst)
	return inst, nil
}

func candleFixture(firstVolume float64) domain.CandleSeries {
	return domain.CandleSeries{Data: []domain.Candle{
		{Time: "2025-01-06", Open: 10, High: 12, Low: 9, Close: 11, Volume: firstVolume},
		{Time: "2025-01-07", Open: 11, High: 13, Low: 10, Close: 10.5, Volume: 250},
	}}
}

func TestOpenThenChangePeriodKeepsOneInstance(t *testing.T) {
	factory := &fakeFactory{t: t}
	source := &fakeSource{series: candleFixture(100)}
	c := NewController(source, factory)

	if _, err := c.Open(ctx, "bitcoin", "Bitcoin"); err != nil {
		t.Fatal(err)
	}
	if c.Live() != 1 {
		t.Fatalf("expected 1 live instance after open, got %d", c.Live())
	}

	payload, err := c.SetPeriod(ctx, domain.PeriodWeekly)
	if err != nil {
		t.Fatal(err)
	}
	if c.Live() != 1 || factory.live != 1 {
		t.Fatalf("expected exactly 1 live instance after period change, got %d", factory.live)
	}
	if !factory.created[0].destroyed {
		t.Error("previous instance was not destroyed")
	}
	if payload.Period != domain.PeriodWeekly || payload.Symbol != "bitcoin" {
		t.Errorf("unexpected payload %+v", payload)
	}
	if factory.created[1].fits == 0 {
		t.Error("visible range was not refit after reload")
	}
}

func TestOpenResetsPeriodToDaily(t *testing.T) {
	factory := &fakeFactory{t: t}
	c := NewController(&fakeSource{series: candleFixture(100)}, factory)

	c.Open(ctx, "bitcoin", "Bitcoin")
	c.SetPeriod(ctx, domain.PeriodMonthly)
	payload, err := c.Open(ctx, "ethereum", "Ethereum")
	if err != nil {
		t.Fatal(err)
	}
	if payload.Period != domain.PeriodDaily {
		t.Errorf("expected daily after reopen, got %s", payload.Period)
	}
}

func TestVolumeOverlay(t *testing.T) {
	cases := []struct {
		name        string
		firstVolume float64
		toggles     int
		wantOverlay bool
	}{
		{"volume on with data", 100, 0, true},
		{"volume off", 100, 1, false},
		{"toggled off then on", 100, 2, true},
		{"zero first volume suppresses overlay", 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			factory := &fakeFactory{t: t}
			source := &fakeSource{series: candleFixture(tc.firstVolume)}
			c := NewController(source, factory)

			payload, err := c.Open(ctx, "bitcoin", "Bitcoin")
			if err != nil {
				t.Fatal(err)
			}
			loads := source.calls
			for i := 0; i < tc.toggles; i++ {
				payload, err = c.ToggleVolume(ctx)
				if err != nil {
					t.Fatal(err)
				}
			}
			if source.calls != loads+tc.toggles {
				t.Errorf("each toggle must reload: %d loads for %d toggles", source.calls-loads, tc.toggles)
			}
			if got := len(payload.Volume) > 0; got != tc.wantOverlay {
				t.Errorf("overlay present = %v, want %v", got, tc.wantOverlay)
			}
			if c.Live() != 1 {
				t.Errorf("expected 1 live instance, got %d", c.Live())
			}
		})
	}
}

func TestVolumeBarColors(t *testing.T) {
	bars := buildVolume(candleFixture(100).Data)
	expected := []VolumeBar{
		{Time: "2025-01-06", Value: 100, Color: upColor},
		{Time: "2025-01-07", Value: 250, Color: downColor},
	}
	if diff := cmp.Diff(bars, expected); diff != "" {
		t.Error(diff)
	}
}

func TestCloseKeepsInstanceUntilNextLoad(t *testing.T) {
	factory := &fakeFactory{t: t}
	c := NewController(&fakeSource{series: candleFixture(100)}, factory)

	c.Open(ctx, "bitcoin", "Bitcoin")
	c.Close()
	if c.Visible() {
		t.Error("chart still visible after close")
	}
	if c.Live() != 1 {
		t.Errorf("close must not destroy the instance, live = %d", c.Live())
	}

	c.Open(ctx, "ethereum", "Ethereum")
	if c.Live() != 1 {
		t.Errorf("reopen leaked an instance, live = %d", c.Live())
	}
	if !factory.created[0].destroyed {
		t.Error("old instance survived the reopen")
	}
}

func TestResizeFullscreen(t *testing.T) {
	factory := &fakeFactory{t: t}
	c := NewController(&fakeSource{series: candleFixture(100)}, factory)

	c.Open(ctx, "bitcoin", "Bitcoin")
	inst := factory.created[0]
	fits := inst.fits

	if err := c.Resize(true); err != nil {
		t.Fatal(err)
	}
	if inst.height != fullscreenHeight {
		t.Errorf("expected fullscreen height %d, got %d", fullscreenHeight, inst.height)
	}
	if inst.fits != fits+1 {
		t.Error("resize must refit the time range")
	}

	c.Resize(false)
	if inst.height != defaultHeight {
		t.Errorf("expected restored height %d, got %d", defaultHeight, inst.height)
	}
}

func TestNoChartErrors(t *testing.T) {
	c := NewController(&fakeSource{series: candleFixture(100)}, &fakeFactory{t: t})

	if _, err := c.SetPeriod(ctx, domain.PeriodWeekly); !errors.Is(err, ErrNoChart) {
		t.Errorf("expected ErrNoChart, got %v", err)
	}
	if _, err := c.ToggleVolume(ctx); !errors.Is(err, ErrNoChart) {
		t.Errorf("expected ErrNoChart, got %v", err)
	}
	if err := c.Resize(true); !errors.Is(err, ErrNoChart) {
		t.Errorf("expected ErrNoChart, got %v", err)
	}
	if _, err := c.SetPeriod(ctx, "hourly"); !errors.Is(err, ErrUnknownPeriod) {
		t.Errorf("expected ErrUnknownPeriod, got %v", err)
	}
}

func TestSetVolumeExplicit(t *testing.T) {
	source := &fakeSource{series: candleFixture(100)}
	c := NewController(source, &fakeFactory{t: t})

	c.Open(ctx, "bitcoin", "Bitcoin")
	payload, err := c.SetVolume(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(payload.Volume) != 0 {
		t.Error("overlay still present after turning volume off")
	}

	// Setting the already-current value still reloads.
	loads := source.calls
	if _, err := c.SetVolume(ctx, false); err != nil {
		t.Fatal(err)
	}
	if source.calls != loads+1 {
		t.Error("SetVolume must reload even without a flag change")
	}
}

func TestLoadFailureLeavesNoNewInstance(t *testing.T) {
	factory := &fakeFactory{t: t}
	source := &fakeSource{series: candleFixture(100)}
	c := NewController(source, factory)

	c.Open(ctx, "bitcoin", "Bitcoin")
	source.err = errors.New("backend down")
	if _, err := c.SetPeriod(ctx, domain.PeriodWeekly); err == nil {
		t.Fatal("expected load error")
	}
	// The fetch failed before teardown, so the old instance stays.
	if c.Live() != 1 {
		t.Errorf("expected previous instance to survive a failed fetch, live = %d", c.Live())
	}
}
