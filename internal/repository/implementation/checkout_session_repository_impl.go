package implementation

import (
	"context"
	"errors"

	"membership-be/internal/entity"
	"membership-be/internal/mapper"
	"membership-be/internal/model"
	"membership-be/internal/repository/contract"
	"membership-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CheckoutSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CheckoutMapper
}

func NewCheckoutSessionRepository(db *gorm.DB) contract.CheckoutSessionRepository {
	return &CheckoutSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewCheckoutMapper(),
	}
}

func (r *CheckoutSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CheckoutSessionRepositoryImpl) Create(ctx context.Context, session *entity.CheckoutSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *CheckoutSessionRepositoryImpl) Update(ctx context.Context, session *entity.CheckoutSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *CheckoutSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CheckoutSession, error) {
	var m model.CheckoutSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CheckoutSessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CheckoutSession, error) {
	var models []*model.CheckoutSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CheckoutSession, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
