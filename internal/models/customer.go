package models

import "time"

type Customer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;index;index:ix_customers_name_code,priority:1" json:"name"`
	Code        string    `gorm:"uniqueIndex;not null;index:ix_customers_name_code,priority:2" json:"code"`
	PhoneNumber *string   `gorm:"index" json:"phone_number"`
	DateCreated time.Time `gorm:"autoCreateTime;index" json:"date_created"`
	DateUpdated time.Time `gorm:"autoUpdateTime;index" json:"date_updated"`
}
