package models

import "time"

// Order references its customer by id only. There is no association field:
// cross-entity reads go through explicit queries, and an order may outlive
// its customer.
type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null;index;index:ix_orders_customer_id_time,priority:1" json:"customer_id"`
	Item        string    `gorm:"not null;index" json:"item"`
	Amount      float64   `gorm:"not null;index;index:ix_orders_time_amount,priority:2" json:"amount"`
	Time        time.Time `gorm:"not null;index;index:ix_orders_customer_id_time,priority:2;index:ix_orders_time_amount,priority:1" json:"time"`
	DateCreated time.Time `gorm:"autoCreateTime;index" json:"date_created"`
	DateUpdated time.Time `gorm:"autoUpdateTime;index" json:"date_updated"`
}
