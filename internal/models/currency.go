package models

// Currency represents a stored currency row.
type Currency struct {
	CurrencyID int64  `json:"currencyID"` // Surrogate key, assigned by the database
	Code       string `json:"code"`       // Natural key, e.g. "USD"; unique
	FullName   string `json:"fullName"`   // e.g. "US Dollar"
	Sign       string `json:"sign"`       // e.g. "$"
}
