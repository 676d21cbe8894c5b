package schema

import (
	"time"

	"github.com/feral-file/ff-marketplace-indexer/internal/domain"
)

// SuggestionStatus represents the state of a community suggestion
type SuggestionStatus string

const (
	// SuggestionStatusInProgress accepts deposits until the goal is reached
	SuggestionStatusInProgress SuggestionStatus = "in_progress"
	SuggestionStatusCompleted  SuggestionStatus = "completed"
	SuggestionStatusWithdrawn  SuggestionStatus = "withdrawn"
)

// Suggestion represents the suggestions table - community proposals funded by deposits
type Suggestion struct {
	// ID is the suggestion id assigned by the community contract
	ID          string           `gorm:"column:id;primaryKey;type:text"`
	Proposer    string           `gorm:"column:proposer;not null;type:text;index:idx_suggestions_proposer"`
	Title       string           `gorm:"column:title;not null;default:'';type:text"`
	Description string           `gorm:"column:description;not null;default:'';type:text"`
	Goal        string           `gorm:"column:goal;not null;type:numeric(78,0)"`
	Raised      string           `gorm:"column:raised;not null;default:0;type:numeric(78,0)"`
	Status      SuggestionStatus `gorm:"column:status;not null;type:text;index:idx_suggestions_status"`
	CreatedAt   time.Time        `gorm:"column:created_at;not null;type:timestamptz"`
	CreatedPos  domain.Position  `gorm:"embedded;embeddedPrefix:created_"`
	// WithdrawnPos is the position of the withdrawal, zero until withdrawn
	WithdrawnPos domain.Position `gorm:"embedded;embeddedPrefix:withdrawn_"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Suggestion model
func (Suggestion) TableName() string {
	return "suggestions"
}

// SuggestionDeposit represents the suggestion_deposits table. Raised is the sum of
// the deposits of a suggestion.
type SuggestionDeposit struct {
	// ID is derived from the deposit event position
	ID           string          `gorm:"column:id;primaryKey;type:text"`
	SuggestionID string          `gorm:"column:suggestion_id;not null;type:text;index:idx_suggestion_deposits_suggestion"`
	Depositor    string          `gorm:"column:depositor;not null;type:text"`
	Amount       string          `gorm:"column:amount;not null;type:numeric(78,0)"`
	DepositedAt  time.Time       `gorm:"column:deposited_at;not null;type:timestamptz"`
	Pos          domain.Position `gorm:"embedded;embeddedPrefix:deposit_"`
}

// TableName specifies the table name for the SuggestionDeposit model
func (SuggestionDeposit) TableName() string {
	return "suggestion_deposits"
}
