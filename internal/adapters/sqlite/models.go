package sqlite

import (
	"time"

	"github.com/shopspring/decimal"
)

type userModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Username        string    `gorm:"column:username;not null"`
	JoinedAt        time.Time `gorm:"column:joined_at;not null"`
	MainCharacterID *int64    `gorm:"column:main_character_id"`
}

func (userModel) TableName() string {
	return "auth_users"
}

type characterModel struct {
	CharacterID int64  `gorm:"column:character_id;primaryKey"`
	UserID      int64  `gorm:"column:user_id;not null"`
	Name        string `gorm:"column:name;not null"`
}

func (characterModel) TableName() string {
	return "characters"
}

type entityModel struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name;not null"`
	Category string `gorm:"column:category;not null"`
}

func (entityModel) TableName() string {
	return "eve_entities"
}

type eveTypeModel struct {
	TypeID int64  `gorm:"column:type_id;primaryKey"`
	Name   string `gorm:"column:name;not null"`
}

func (eveTypeModel) TableName() string {
	return "eve_types"
}

type marketPriceModel struct {
	TypeID       int64           `gorm:"column:type_id;primaryKey"`
	AveragePrice decimal.Decimal `gorm:"column:average_price;not null"`
}

func (marketPriceModel) TableName() string {
	return "market_prices"
}
