// Package chart owns the lifecycle of the candlestick chart. The charting
// library itself is an external collaborator reached through the Factory
// and Instance interfaces; the controller guarantees that at most one
// instance is ever alive and that the previous one is destroyed before the
// next is created.
package chart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ecetuna/finfeed/internal/domain"
)

// Instance is one live chart created by the collaborator.
type Instance interface {
	SetCandles(candles []Point)
	SetVolume(bars []VolumeBar)
	FitContent()
	Resize(width, height int)
	Destroy()
}

// Factory creates chart instances sized to their container.
type Factory interface {
	Create(width, height int) (Instance, error)
}

// CandleSource is the slice of the backend the controller needs.
type CandleSource interface {
	Candlesticks(ctx context.Context, symbol, period string) (domain.CandleSeries, error)
}

// Point is a candle in the shape the collaborator consumes.
type Point struct {
	Time  string  `json:"time"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// VolumeBar is one histogram bar of the volume overlay.
type VolumeBar struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Payload is what a load hands to the page: the series that were just set
// on the live instance.
type Payload struct {
	Symbol  string      `json:"symbol"`
	Name    string      `json:"name"`
	Period  string      `json:"period"`
	Candles []Point     `json:"candles"`
	Volume  []VolumeBar `json:"volume,omitempty"`
}

const (
	upColor   = "rgba(16, 185, 129, 0.3)"
	downColor = "rgba(239, 68, 68, 0.3)"

	defaultWidth  = 960
	defaultHeight = 500
	// fullscreenHeight approximates the viewport minus the modal chrome.
	fullscreenHeight = 880
)

var (
	ErrNoChart       = errors.New("no chart is open")
	ErrUnknownPeriod = errors.New("unknown chart period")
)

// Controller is the chart state machine: either no chart, or one active
// chart for (symbol, period, volume flag).
type Controller struct {
	source  CandleSource
	factory Factory

	mu         sync.Mutex
	inst       Instance
	live       int
	symbol     string
	name       string
	period     string
	volume     bool
	visible    bool
	fullscreen bool
	width      int
	height     int
}

func NewController(source CandleSource, factory Factory) *Controller {
	return &Controller{
		source:  source,
		factory: factory,
		period:  domain.PeriodDaily,
		volume:  true,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Open enters the active state for a symbol. The period always resets to
// daily, matching a freshly opened chart modal.
func (c *Controller) Open(ctx context.Context, symbol, name string) (Payload, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.symbol = symbol
	c.name = name
	c.period = domain.PeriodDaily
	c.visible = true
	return c.load(ctx)
}

// SetPeriod reloads the active symbol with a new period and a fresh
// instance.
func (c *Controller) SetPeriod(ctx context.Context, period string) (Payload, error) {
	if !domain.ValidPeriod(period) {
		return Payload{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.symbol == "" {
		return Payload{}, ErrNoChart
	}

	c.period = period
	return c.load(ctx)
}

// ToggleVolume flips the volume overlay flag and forces a reload of the
// same symbol and period.
func (c *Controller) ToggleVolume(ctx context.Context) (Payload, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.symbol == "" {
		return Payload{}, ErrNoChart
	}

	c.volume = !c.volume
	return c.load(ctx)
}

// SetVolume sets the overlay flag explicitly. A reload happens even when
// the flag did not change, matching ToggleVolume.
func (c *Controller) SetVolume(ctx context.Context, on bool) (Payload, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.symbol == "" {
		return Payload{}, ErrNoChart
	}

	c.volume = on
	return c.load(ctx)
}

// Close hides the chart. The instance itself survives until the next load,
// which is when it gets destroyed and replaced.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = false
	c.fullscreen = false
}

// Resize toggles fullscreen dimensions on the live instance and refits the
// visible range.
func (c *Controller) Resize(fullscreen bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inst == nil {
		return ErrNoChart
	}

	c.fullscreen = fullscreen
	height := defaultHeight
	if fullscreen {
		height = fullscreenHeight
	}
	c.height = height
	c.inst.Resize(c.width, height)
	c.inst.FitContent()
	return nil
}

// Live reports how many chart instances currently exist. It can only ever
// be 0 or 1; tests assert exactly that.
func (c *Controller) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live
}

// Active reports the current symbol, period and volume flag, with ok false
// when no chart has been opened yet.
func (c *Controller) Active() (symbol, period string, volume, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.symbol, c.period, c.volume, c.symbol != ""
}

// Visible reports whether the chart modal is shown.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// load fetches the series and rebuilds the instance. Callers hold c.mu.
func (c *Controller) load(ctx context.Context) (Payload, error) {
	series, err := c.source.Candlesticks(ctx, c.symbol, c.period)
	if err != nil {
		return Payload{}, err
	}

	if c.inst != nil {
		c.inst.Destroy()
		c.inst = nil
		c.live--
	}

	inst, err := c.factory.Create(c.width, c.height)
	if err != nil {
		return Payload{}, err
	}
	c.inst = inst
	c.live++

	candles := make([]Point, len(series.Data))
	for i, d := range series.Data {
		candles[i] = Point{Time: d.Time, Open: d.Open, High: d.High, Low: d.Low, Close: d.Close}
	}
	inst.SetCandles(candles)

	payload := Payload{
		Symbol:  c.symbol,
		Name:    c.name,
		Period:  c.period,
		Candles: candles,
	}

	// The volume overlay only appears when the first candle actually
	// carries volume; FX style series report zero throughout.
	if c.volume && len(series.Data) > 0 && series.Data[0].Volume > 0 {
		bars := buildVolume(series.Data)
		inst.SetVolume(bars)
		payload.Volume = bars
	}

	inst.FitContent()
	return payload, nil
}

func buildVolume(candles []domain.Candle) []VolumeBar {
	bars := make([]VolumeBar, len(candles))
	for i, d := range candles {
		color := downColor
		if d.Close >= d.Open {
			color = upColor
		}
		bars[i] = VolumeBar{Time: d.Time, Value: d.Volume, Color: color}
	}
	return bars
}
