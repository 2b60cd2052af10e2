package mapper

import (
	"membership-be/internal/entity"
	"membership-be/internal/model"
)

type PlanMapper struct {
	featureMapper *FeatureMapper
}

func NewPlanMapper() *PlanMapper {
	return &PlanMapper{
		featureMapper: NewFeatureMapper(),
	}
}

func (m *PlanMapper) ToEntity(p *model.Plan) *entity.Plan {
	if p == nil {
		return nil
	}
	return &entity.Plan{
		Id:              p.Id,
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		Price:           p.Price,
		Currency:        p.Currency,
		BillingInterval: entity.BillingInterval(p.BillingInterval),
		TrialDays:       p.TrialDays,
		IsActive:        p.IsActive,
		SortOrder:       p.SortOrder,
		Features:        m.planFeaturesToEntities(p.Features),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *PlanMapper) ToModel(p *entity.Plan) *model.Plan {
	if p == nil {
		return nil
	}
	return &model.Plan{
		Id:              p.Id,
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		Price:           p.Price,
		Currency:        p.Currency,
		BillingInterval: string(p.BillingInterval),
		TrialDays:       p.TrialDays,
		IsActive:        p.IsActive,
		SortOrder:       p.SortOrder,
		Features:        m.planFeaturesToModels(p.Features),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (m *PlanMapper) planFeaturesToEntities(models []*model.PlanFeature) []entity.PlanFeature {
	if models == nil {
		return nil
	}
	entities := make([]entity.PlanFeature, 0, len(models))
	for _, pf := range models {
		e := entity.PlanFeature{
			PlanId:    pf.PlanId,
			FeatureId: pf.FeatureId,
			Value:     pf.Value,
		}
		if f := m.featureMapper.ToEntity(pf.Feature); f != nil {
			e.Feature = *f
		}
		entities = append(entities, e)
	}
	return entities
}

func (m *PlanMapper) planFeaturesToModels(entities []entity.PlanFeature) []*model.PlanFeature {
	if entities == nil {
		return nil
	}
	models := make([]*model.PlanFeature, 0, len(entities))
	for _, pf := range entities {
		models = append(models, &model.PlanFeature{
			PlanId:    pf.PlanId,
			FeatureId: pf.FeatureId,
			Value:     pf.Value,
			Feature:   m.featureMapper.ToModel(&pf.Feature),
		})
	}
	return models
}
