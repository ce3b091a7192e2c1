package sale

// SaleDTO carries a new receipt.
type SaleDTO struct {
	Items []ItemDTO `json:"items"`
}

type ItemDTO struct {
	Name     string  `json:"nome"`
	Category string  `json:"categoria"`
	Price    float64 `json:"prezzo"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d SaleDTO) Validate() error {
	if len(d.Items) == 0 {
		return ValidationError{Msg: "a sale needs at least one item"}
	}
	for _, item := range d.Items {
		if item.Name == "" {
			return ValidationError{Msg: "every item needs a nome"}
		}
		if item.Price < 0 {
			return ValidationError{Msg: "prezzo must not be negative"}
		}
	}
	return nil
}

type SalesResponse struct {
	Sales []*Sale `json:"sales"`
}

type StatusResponse struct {
	Success bool `json:"success"`
}

// ReportFilter narrows the report window. Zero values mean "no filter".
type ReportFilter struct {
	From     string // inclusive, YYYY-MM-DD
	To       string // inclusive, YYYY-MM-DD
	Category string
	Product  string
}

// Report is the sales analytics summary for one company.
type Report struct {
	TotalRevenue   float64             `json:"totalRevenue"`
	Receipts       int64               `json:"receipts"`
	Trend          []TrendPoint        `json:"trend"`
	TrendBreakdown []ProductTrendPoint `json:"trendBreakdown"`
	Hourly         []HourlyPoint       `json:"hourly"`
	ByCategory     []CategoryTotal     `json:"byCategory"`
	TopProducts    []ProductStat       `json:"topProducts"`
}

type TrendPoint struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type ProductTrendPoint struct {
	Date    string  `json:"date"`
	Product string  `json:"product"`
	Total   float64 `json:"total"`
}

type HourlyPoint struct {
	Hour  int   `json:"hour"`
	Count int64 `json:"count"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type ProductStat struct {
	Product  string  `json:"product"`
	Quantity int64   `json:"quantity"`
	Total    float64 `json:"total"`
}
