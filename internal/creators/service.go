package creators

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

// ErrInvalidCredentials is returned by Login when no creator matches
var ErrInvalidCredentials = errors.Unauthorized.Explain("invalid credentials")

// CreatorService defines creator profile operations.
type CreatorService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Creator, error)
	GetProfile(ctx context.Context, id uint64) (*models.Creator, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	UpdateProfile(ctx context.Context, id uint64, req *models.UpdateProfileRequest) (*models.Creator, error)
}

// Service implements CreatorService
type Service struct {
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new CreatorService
func NewService(logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		logger: logger.Named("creators"),
		db:     db,
	}
}

// normalizeName is applied to names on every write path
func normalizeName(name string) string {
	return strings.ToLower(name)
}

// Register creates a creator with a lower-cased name. Name and wallet
// address uniqueness is left to the database.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.Creator, error) {
	creator := &models.Creator{
		Name:          normalizeName(req.Name),
		WalletAddress: req.WalletAddress,
	}

	if err := s.db.WithContext(ctx).Create(creator).Error; err != nil {
		err = dbutil.WrapError(err)
		if errors.Is(err, errors.Conflict) {
			return nil, errors.Conflict.Explain("Profile already registered (wallet address or username)").Wrap(err)
		}
		return nil, fmt.Errorf("failed to create creator: %w", err)
	}

	metrics.CreatorsRegistered.Inc()
	s.logger.Info("Creator registered", zap.Uint64("creator_id", creator.ID))

	return creator, nil
}

// GetProfile returns the creator with the given id, or nil when absent
func (s *Service) GetProfile(ctx context.Context, id uint64) (*models.Creator, error) {
	creator, err := dbutil.FindOne[models.Creator](s.db.WithContext(ctx).Where("id = ?", id))
	if err != nil {
		return nil, fmt.Errorf("failed to find creator: %w", err)
	}
	return creator, nil
}

// Login matches username and wallet address exactly. The stored name is
// lower-cased, so a mixed-case username never matches.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	creator, err := dbutil.FindOne[models.Creator](s.db.WithContext(ctx).
		Where("name = ? AND wallet_address = ?", req.Username, req.WalletAddress))
	if err != nil {
		return nil, fmt.Errorf("failed to find creator: %w", err)
	}
	if creator == nil {
		return nil, ErrInvalidCredentials
	}

	return &models.LoginResponse{CreatorID: creator.ID}, nil
}

// UpdateProfile changes the non-empty fields of req on the creator with
// the given id and returns the updated record.
func (s *Service) UpdateProfile(ctx context.Context, id uint64, req *models.UpdateProfileRequest) (*models.Creator, error) {
	updates := make(map[string]interface{}, 2)
	if req.Name != "" {
		updates["name"] = normalizeName(req.Name)
	}
	if req.WalletAddress != "" {
		updates["wallet_address"] = req.WalletAddress
	}
	if len(updates) == 0 {
		return nil, errors.Invalid.Explain("nothing to update")
	}

	var creator models.Creator
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Creator{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NotFound.Explain("creator %d not found", id)
		}
		return tx.Where("id = ?", id).First(&creator).Error
	})
	if err != nil {
		err = dbutil.WrapError(err)
		if errors.Is(err, errors.Conflict) {
			return nil, errors.Conflict.Explain("Profile already registered (wallet address or username)").Wrap(err)
		}
		if errors.Is(err, errors.NotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update creator: %w", err)
	}

	s.logger.Info("Creator profile updated", zap.Uint64("creator_id", id))
	return &creator, nil
}
