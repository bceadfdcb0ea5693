package model

import "github.com/shopspring/decimal"

// Fournisseur is a supplier converting funds for a transaction at its own
// daily rate. Names are unique across the table.
type Fournisseur struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Nom           string          `json:"nom" gorm:"uniqueIndex;size:100;not null"`
	TauxJour      int64           `json:"taux_jour" gorm:"not null"`
	QuantiteUSDT  decimal.Decimal `json:"quantite_USDT" gorm:"type:decimal(10,2);not null"`
	TransactionID uint            `json:"transaction_id" gorm:"not null;index"`

	// Relations
	Transaction   *Transaction   `json:"transaction,omitempty" gorm:"foreignKey:TransactionID"`
	Beneficiaires []Beneficiaire `json:"beneficiaires,omitempty" gorm:"foreignKey:FournisseurID"`
}

// TableName specifies the table name for Fournisseur.
func (Fournisseur) TableName() string {
	return "fournisseurs"
}
