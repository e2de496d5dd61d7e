package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"literinth-be/internal/entity"
	"literinth-be/internal/mapper"
	"literinth-be/internal/model"
	"literinth-be/internal/pkg/locale"
	"literinth-be/internal/repository/contract"
	"literinth-be/internal/repository/specification"
)

type SubcategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CategoryMapper
}

func NewSubcategoryRepository(db *gorm.DB) contract.SubcategoryRepository {
	return &SubcategoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewCategoryMapper(),
	}
}

func (r *SubcategoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubcategoryRepositoryImpl) Create(ctx context.Context, subcategory *entity.Subcategory) error {
	m := r.mapper.SubcategoryToModel(subcategory)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	subcategory.Id = m.Id
	subcategory.CreatedAt = m.CreatedAt
	subcategory.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *SubcategoryRepositoryImpl) Update(ctx context.Context, subcategory *entity.Subcategory) error {
	m := r.mapper.SubcategoryToModel(subcategory)
	return r.db.WithContext(ctx).Model(&model.Subcategory{}).
		Where("id = ?", m.Id).
		Updates(map[string]interface{}{
			"slug":       m.Slug,
			"sort_order": m.SortOrder,
		}).Error
}

func (r *SubcategoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Subcategory{}, id).Error
}

func (r *SubcategoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subcategory, error) {
	var m model.Subcategory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SubcategoryToEntity(&m), nil
}

func (r *SubcategoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subcategory, error) {
	var models []*model.Subcategory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SubcategoriesToEntities(models), nil
}

func (r *SubcategoryRepositoryImpl) UpsertTranslation(ctx context.Context, subcategoryId uuid.UUID, loc locale.Locale, name string, description *string) error {
	translation := model.SubcategoryTranslation{
		SubcategoryId: subcategoryId,
		Locale:        string(loc),
		Name:          name,
		Description:   description,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subcategory_id"}, {Name: "locale"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "updated_at"}),
	}).Create(&translation).Error
}

func (r *SubcategoryRepositoryImpl) UpdateVisibility(ctx context.Context, id uuid.UUID, visibleRu, visibleEn *bool) error {
	updates := map[string]interface{}{}
	if visibleRu != nil {
		updates["visible_ru"] = *visibleRu
	}
	if visibleEn != nil {
		updates["visible_en"] = *visibleEn
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Subcategory{}).Where("id = ?", id).Updates(updates).Error
}
