package chart

// The real chart is drawn in the page by the charting script, fed with the
// Payload each load returns. The server still runs the full lifecycle so
// the one-instance guarantee holds; headless instances only remember what
// was last handed to the collaborator.

type headlessInstance struct {
	width, height int
	candles       []Point
	volume        []VolumeBar
	destroyed     bool
}

func (i *headlessInstance) SetCandles(candles []Point) { i.candles = candles }
func (i *headlessInstance) SetVolume(bars []VolumeBar) { i.volume = bars }
func (i *headlessInstance) FitContent()                {}
func (i *headlessInstance) Resize(width, height int)   { i.width, i.height = width, height }
func (i *headlessInstance) Destroy()                   { i.destroyed = true }

type headlessFactory struct{}

func (headlessFactory) Create(width, height int) (Instance, error) {
	return &headlessInstance{width: width, height: height}, nil
}

// NewHeadlessFactory returns the factory used in production, where the
// collaborator lives in the page and the server only mirrors its state.
func NewHeadlessFactory() Factory {
	return headlessFactory{}
}
