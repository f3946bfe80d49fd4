package assets

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Aidin1998/creatorhub/common/dbutil"
	"github.com/Aidin1998/creatorhub/pkg/errors"
	"github.com/Aidin1998/creatorhub/pkg/metrics"
	"github.com/Aidin1998/creatorhub/pkg/models"
)

// Sanitizer strips markup from free text before it is stored
type Sanitizer interface {
	SanitizeText(s string) string
}

// AssetService defines asset metadata operations.
type AssetService interface {
	CreateAsset(ctx context.Context, req *models.CreateAssetRequest) (*models.AssetMetadata, error)
	ListAssets(ctx context.Context) ([]models.AssetMetadata, error)
	GetAsset(ctx context.Context, id uint64) (*models.AssetMetadata, error)
	ListAssetsByCreator(ctx context.Context, creatorID uint64) ([]models.AssetMetadata, error)
}

// Service implements AssetService
type Service struct {
	logger    *zap.Logger
	db        *gorm.DB
	sanitizer Sanitizer
}

// NewService creates a new AssetService
func NewService(logger *zap.Logger, db *gorm.DB, sanitizer Sanitizer) *Service {
	return &Service{
		logger:    logger.Named("assets"),
		db:        db,
		sanitizer: sanitizer,
	}
}

// CreateAsset stores a new asset. The creator id is not checked and
// unlockable content is always off for new assets.
func (s *Service) CreateAsset(ctx context.Context, req *models.CreateAssetRequest) (*models.AssetMetadata, error) {
	description := strings.TrimSpace(s.sanitizer.SanitizeText(req.Description))
	if description == "" {
		return nil, errors.Invalid.
			Explain("Request validation failed").
			WithField("required", "description", "description is required")
	}

	asset := &models.AssetMetadata{
		CreatorID:         req.CreatorID,
		URL:               req.URL,
		Price:             *req.Price,
		Description:       description,
		UnlockableContent: false,
	}

	if err := s.db.WithContext(ctx).Create(asset).Error; err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", dbutil.WrapError(err))
	}

	metrics.AssetsCreated.Inc()
	s.logger.Info("Asset created",
		zap.Uint64("asset_id", asset.ID),
		zap.Uint64("creator_id", asset.CreatorID))

	return asset, nil
}

// ListAssets returns every asset, newest first
func (s *Service) ListAssets(ctx context.Context) ([]models.AssetMetadata, error) {
	assets, err := dbutil.FindAll[models.AssetMetadata](s.db.WithContext(ctx).Order("id DESC"))
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

// GetAsset returns the asset with the given id, or nil when absent
func (s *Service) GetAsset(ctx context.Context, id uint64) (*models.AssetMetadata, error) {
	asset, err := dbutil.FindOne[models.AssetMetadata](s.db.WithContext(ctx).Where("id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("failed to find asset: %w", err)
	}
	return asset, nil
}

func (s *Service) ListAssetsByCreator(ctx context.Context, creatorID uint64) ([]models.AssetMetadata, error) {
	assets, err := dbutil.FindAll[models.AssetMetadata](s.db.WithContext(ctx).Where("creator_id = ?", creatorID))
	if err != nil {
		return nil, fmt.Errorf("failed to list assets of creator %d: %w", creatorID, err)
	}
	return assets, nil
}
