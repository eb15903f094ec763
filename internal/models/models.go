package models

import "time"

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	Code        string    `gorm:"uniqueIndex;size:10;not null" json:"code"`
	Name        string    `gorm:"not null"                  json:"name"`
	PriceEur    float64   `gorm:"not null"                  json:"priceEur"`
	PriceUsd    float64   `gorm:"not null"                  json:"priceUsd"`
	IsAvailable bool      `gorm:"not null"                  json:"isAvailable"`
	CreatedAt   time.Time `gorm:"not null"                  json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"size:16;not null"`
	Enabled      bool   `gorm:"not null;default:true"`
}

// CodeSequence backs the monotonic product code sequence. A single row per
// sequence name, incremented inside a transaction.
type CodeSequence struct {
	Name  string `gorm:"primaryKey;size:32"`
	Value int64  `gorm:"not null"`
}
