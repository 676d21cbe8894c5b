package schema

import (
	"time"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
)

// Verification represents the verifications table - verified artists and inversors
type Verification struct {
	Address  string `gorm:"column:address;primaryKey;type:text"`
	Verified bool   `gorm:"column:verified;not null;default:false"`
	Inversor bool   `gorm:"column:inversor;not null;default:false"`
	// VerifiedPos is the position of the last verify or unverify event
	VerifiedPos domain.Position `gorm:"embedded;embeddedPrefix:verified_"`
	// InversorPos is the position of the last inversor event
	InversorPos domain.Position `gorm:"embedded;embeddedPrefix:inversor_"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Verification model
func (Verification) TableName() string {
	return "verifications"
}
