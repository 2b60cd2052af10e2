package implementation

import (
	"context"
	"errors"

	"membership-be/internal/entity"
	"membership-be/internal/mapper"
	"membership-be/internal/model"
	"membership-be/internal/repository/contract"
	"membership-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PromoCodeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PromoCodeMapper
}

func NewPromoCodeRepository(db *gorm.DB) contract.PromoCodeRepository {
	return &PromoCodeRepositoryImpl{
		db:     db,
		mapper: mapper.NewPromoCodeMapper(),
	}
}

func (r *PromoCodeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PromoCodeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PromoCode, error) {
	var m model.PromoCode
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	query = query.Preload("AllowedPlans")
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PromoCodeRepositoryImpl) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.PromoCode{}).
		Where("id = ?", id).
		UpdateColumn("used_count", gorm.Expr("used_count + 1")).Error
}
