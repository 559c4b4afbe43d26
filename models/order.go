package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID        uint        `gorm:"primaryKey"`
	UserID    uint        `gorm:"not null;index"`
	OrderDate time.Time   `gorm:"autoCreateTime"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	ID       uint `gorm:"primaryKey"`
	OrderID  uint `gorm:"not null;index"`
	ItemID   uint `gorm:"not null;index"`
	Quantity int  `gorm:"not null;default:1;check:quantity > 0"`
}
