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

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) contract.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewCategoryMapper(),
	}
}

func (r *CategoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *entity.Category) error {
	m := r.mapper.ToModel(category)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	category.Id = m.Id
	category.CreatedAt = m.CreatedAt
	category.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *entity.Category) error {
	m := r.mapper.ToModel(category)
	return r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", m.Id).
		Updates(map[string]interface{}{
			"slug":       m.Slug,
			"icon":       m.Icon,
			"sort_order": m.SortOrder,
		}).Error
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}

func (r *CategoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	var m model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CategoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var models []*model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CategoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Category{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CategoryRepositoryImpl) UpsertTranslation(ctx context.Context, categoryId uuid.UUID, loc locale.Locale, name string, description *string) error {
	translation := model.CategoryTranslation{
		CategoryId:  categoryId,
		Locale:      string(loc),
		Name:        name,
		Description: description,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_id"}, {Name: "locale"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "updated_at"}),
	}).Create(&translation).Error
}

func (r *CategoryRepositoryImpl) UpdateVisibility(ctx context.Context, id uuid.UUID, visibleRu, visibleEn *bool) error {
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
	return r.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Updates(updates).Error
}
