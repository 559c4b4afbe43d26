package models

type User struct {
	ID             uint   `gorm:"primaryKey"`
	UserName       string `gorm:"not null;unique;index"`
	Email          string `gorm:"not null;unique;index"`
	FullName       string `gorm:"not null"`
	HashedPassword string `gorm:"not null"`
}
