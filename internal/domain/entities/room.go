package entities

import "github.com/shopspring/decimal"

// Room is the rentable unit referenced by a rental.
type Room struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
}
