package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single FCFA to USDT conversion agreement.
// MontantUSDT is derived: MontantFCFA divided by TauxConvenu, two decimals.
type Transaction struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	MontantFCFA     int64           `json:"montantFCFA" gorm:"not null"`
	TauxConvenu     int64           `json:"tauxConv" gorm:"not null"`
	MontantUSDT     decimal.Decimal `json:"montantUSDT" gorm:"type:decimal(10,2);not null"`
	DateTransaction time.Time       `json:"dateTransaction"`

	// Relations
	Fournisseurs []Fournisseur `json:"fournisseurs,omitempty" gorm:"foreignKey:TransactionID"`
}

// TableName specifies the table name for Transaction.
func (Transaction) TableName() string {
	return "transactions"
}
