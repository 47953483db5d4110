package persistence

import (
	"time"
)

// ChainModel represents the chains table. Segments are stored as a JSON
// column so the serialized chain round-trips field-for-field.
type ChainModel struct {
	ID        string    `gorm:"column:id;primaryKey;not null"`
	Tick      int       `gorm:"column:tick;not null;index"`
	Segments  string    `gorm:"column:segments;type:text;not null"`
	LeafCost  float64   `gorm:"column:leaf_cost;not null"`
	TotalCost float64   `gorm:"column:total_cost;not null"`
	MintValue float64   `gorm:"column:mint_value;not null"`
	Profit    float64   `gorm:"column:profit;not null"`
	Funded    bool      `gorm:"column:funded;not null;default:false"`
	Priority  float64   `gorm:"column:priority;not null"`
	Age       int       `gorm:"column:age;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (ChainModel) TableName() string {
	return "chains"
}
