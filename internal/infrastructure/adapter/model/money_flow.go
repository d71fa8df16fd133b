package model

import (
	"time"
)

// KindEnumType is the postgres enum type backing the kind column
const KindEnumType = "money_flow_kind"

// MoneyFlow represents the database model for money flows.
// OccurredDate holds the caller's wall clock as given. The audit columns
// record instants, so they keep their offset across the round trip.
type MoneyFlow struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Title        string    `gorm:"size:30;not null"`
	Amount       int64     `gorm:"not null"`
	OccurredDate time.Time `gorm:"type:timestamp;not null;index:ix_money_flows_occurred_kind,priority:1"`
	CreatedAt    time.Time `gorm:"type:timestamptz"`
	UpdatedAt    time.Time `gorm:"type:timestamptz"`
	Kind         string    `gorm:"type:money_flow_kind;not null;default:'expense';index;index:ix_money_flows_occurred_kind,priority:2"`
}

// TableName specifies the table name for MoneyFlow
func (MoneyFlow) TableName() string {
	return "money_flows"
}
