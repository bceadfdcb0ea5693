package model

import "github.com/shopspring/decimal"

// Beneficiaire earns a per-USDT commission on a supplier's activity.
type Beneficiaire struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Nom            string          `json:"nom" gorm:"uniqueIndex;size:100;not null"`
	CommissionUSDT decimal.Decimal `json:"commission_USDT" gorm:"type:decimal(10,2);not null"`
	FournisseurID  uint            `json:"fournisseur_id" gorm:"not null;index"`

	// Relations
	Fournisseur *Fournisseur `json:"fournisseur,omitempty" gorm:"foreignKey:FournisseurID"`
}

// TableName specifies the table name for Beneficiaire.
func (Beneficiaire) TableName() string {
	return "beneficiaires"
}
