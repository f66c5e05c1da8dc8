package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyID int64  `json:"currencyID"` // Surrogate key; zero before persistence
	Code       string `json:"code"`       // e.g. "USD"
	FullName   string `json:"fullName"`   // e.g. "US Dollar"
	Sign       string `json:"sign"`       // e.g. "$"
}
