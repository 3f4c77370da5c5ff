package gorm

import "time"

// Aircraft is the persisted aircraft record. created and updated are set by
// the caller; created is never written after insert.
type Aircraft struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:nome;not null"`
	Brand       string    `gorm:"column:marca;type:varchar(20);not null;index"`
	Year        int       `gorm:"column:ano;not null"`
	Description string    `gorm:"column:descricao;type:text"`
	Sold        bool      `gorm:"column:vendido;default:false"`
	Created     time.Time `gorm:"column:created;<-:create;index"`
	Updated     time.Time `gorm:"column:updated"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aeronave"
}
