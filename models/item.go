package models

type Item struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"not null;index"`
	Description string  `gorm:"not null"`
	Price       float64 `gorm:"not null;check:price >= 0"`
}
