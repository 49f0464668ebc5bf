package player

// ValueTrend is the short-term market value direction.
type ValueTrend string

const (
	ValueTrendUnknown ValueTrend = "unknown"
	ValueTrendFlat    ValueTrend = "flat"
	ValueTrendUp      ValueTrend = "up"
	ValueTrendDown    ValueTrend = "down"
)

// ParseValueTrendCode maps the upstream integer code (0 flat, 1 up, 2 down).
func ParseValueTrendCode(code int64) ValueTrend {
	switch code {
	case 0:
		return ValueTrendFlat
	case 1:
		return ValueTrendUp
	case 2:
		return ValueTrendDown
	default:
		return ValueTrendUnknown
	}
}

// ParseValueTrend accepts the canonical string form.
func ParseValueTrend(raw string) ValueTrend {
	switch ValueTrend(raw) {
	case ValueTrendFlat, ValueTrendUp, ValueTrendDown:
		return ValueTrend(raw)
	default:
		return ValueTrendUnknown
	}
}

// SellerRef identifies the manager offering a listing. Nil means the league itself sells.
type SellerRef struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// MarketListing is a player on the transfer market of one league.
type MarketListing struct {
	Player
	AskingPrice        int64      `json:"askingPrice"`
	SecondsUntilExpiry int64      `json:"secondsUntilExpiry"`
	ValueTrend         ValueTrend `json:"valueTrend"`
	AveragePoints      *int64     `json:"averagePoints,omitempty"`
	Seller             *SellerRef `json:"seller"`
}
