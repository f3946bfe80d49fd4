package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices are rendered as JSON numbers, matching what clients send.
	decimal.MarshalJSONWithoutQuotes = true
}

// Creator represents a registered creator profile
type Creator struct {
	ID            uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string    `json:"name" gorm:"uniqueIndex;not null;size:255"` // stored lower-cased
	WalletAddress string    `json:"walletAddress" gorm:"uniqueIndex;not null;size:255"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// AssetMetadata represents a content record owned by a creator
type AssetMetadata struct {
	ID                uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatorID         uint64          `json:"creatorId" gorm:"index;not null"` // not checked against creators
	URL               string          `json:"url" gorm:"column:url;not null"`
	Price             decimal.Decimal `json:"price" gorm:"type:numeric(20,8);not null"`
	Description       string          `json:"description" gorm:"type:text;not null"`
	UnlockableContent bool            `json:"unlockableContent" gorm:"not null"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// TableName pins the table name instead of relying on pluralization
func (AssetMetadata) TableName() string {
	return "asset_metadata"
}

// RegisterRequest is the body of POST /creator/register
type RegisterRequest struct {
	Name          string `json:"name" validate:"required"`
	WalletAddress string `json:"walletAddress" validate:"required"`
}

// RegisterResponse deliberately omits the wallet address
type RegisterResponse struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// LoginRequest is the body of POST /creator/login
type LoginRequest struct {
	Username      string `json:"username" validate:"required"`
	WalletAddress string `json:"walletAddress" validate:"required"`
}

// LoginResponse carries only the creator id; no session or token is issued
type LoginResponse struct {
	CreatorID uint64 `json:"creatorId"`
}

// UpdateProfileRequest is the body of PUT /creator/register/:id.
// Empty fields are left unchanged; at least one must be set.
type UpdateProfileRequest struct {
	Name          string `json:"name" validate:"required_without=WalletAddress"`
	WalletAddress string `json:"walletAddress" validate:"required_without=Name"`
}

// CreateAssetRequest is the body of POST /creator/assets.
// Price is a pointer so that a zero price counts as present.
type CreateAssetRequest struct {
	CreatorID   uint64           `json:"creatorId" validate:"required"`
	URL         string           `json:"url" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Description string           `json:"description" validate:"required"`
}

// CreateAssetResponse wraps a newly created asset
type CreateAssetResponse struct {
	Message string         `json:"message"`
	Data    *AssetMetadata `json:"data"`
}
