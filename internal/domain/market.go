package domain

const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// ValidPeriod reports whether p is one of the candlestick periods the
// backend understands.
func ValidPeriod(p string) bool {
	return p == PeriodDaily || p == PeriodWeekly || p == PeriodMonthly
}

// MarketEntry is one card on the market board. The backend keys entries by
// symbol and formats Value for display, currency sign included.
type MarketEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Logo  string `json:"logo"`
}

type CalendarEntry struct {
	Name        string `json:"name"`
	Current     string `json:"current"`
	NextMeeting string `json:"next_meeting"`
	NextRelease string `json:"next_release"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Candle is a single OHLCV point. Time is the backend's day string
// (YYYY-MM-DD) and is passed through to the charting collaborator as is.
type Candle struct {
	Time   string  `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

type CandleSeries struct {
	Symbol string   `json:"symbol"`
	Period string   `json:"period"`
	Data   []Candle `json:"data"`
}
