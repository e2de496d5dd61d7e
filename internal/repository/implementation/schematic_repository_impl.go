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

type SchematicRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SchematicMapper
}

func NewSchematicRepository(db *gorm.DB) contract.SchematicRepository {
	return &SchematicRepositoryImpl{
		db:     db,
		mapper: mapper.NewSchematicMapper(),
	}
}

func (r *SchematicRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SchematicRepositoryImpl) Create(ctx context.Context, schematic *entity.Schematic) error {
	m := r.mapper.ToModel(schematic)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	schematic.Id = m.Id
	schematic.CreatedAt = m.CreatedAt
	schematic.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *SchematicRepositoryImpl) Update(ctx context.Context, schematic *entity.Schematic) error {
	m := r.mapper.ToModel(schematic)
	return r.db.WithContext(ctx).Model(&model.Schematic{}).
		Where("id = ?", m.Id).
		Updates(map[string]interface{}{
			"category_id":    m.CategoryId,
			"subcategory_id": m.SubcategoryId,
			"file_url":       m.FileURL,
			"image_url":      m.ImageURL,
		}).Error
}

func (r *SchematicRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Schematic{}, id).Error
}

func (r *SchematicRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Schematic, error) {
	var m model.Schematic
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SchematicRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Schematic, error) {
	var models []*model.Schematic
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SchematicRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Schematic{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SchematicRepositoryImpl) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.increment(ctx, id, "views")
}

func (r *SchematicRepositoryImpl) IncrementDownloads(ctx context.Context, id uuid.UUID) (int64, error) {
	return r.increment(ctx, id, "downloads")
}

func (r *SchematicRepositoryImpl) increment(ctx context.Context, id uuid.UUID, column string) (int64, error) {
	var m model.Schematic
	result := r.db.WithContext(ctx).Model(&m).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: column}}}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	if column == "downloads" {
		return m.Downloads, nil
	}
	return m.Views, nil
}

func (r *SchematicRepositoryImpl) SumCounters(ctx context.Context) (int64, int64, error) {
	var totals struct {
		Views     int64
		Downloads int64
	}
	err := r.db.WithContext(ctx).Model(&model.Schematic{}).
		Select("COALESCE(SUM(views), 0) AS views", "COALESCE(SUM(downloads), 0) AS downloads").
		Scan(&totals).Error
	if err != nil {
		return 0, 0, err
	}
	return totals.Views, totals.Downloads, nil
}

func (r *SchematicRepositoryImpl) UpsertTranslation(ctx context.Context, schematicId uuid.UUID, loc locale.Locale, title string, description, content *string) error {
	translation := model.SchematicTranslation{
		SchematicId: schematicId,
		Locale:      string(loc),
		Title:       title,
		Description: description,
		Content:     content,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "schematic_id"}, {Name: "locale"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "content", "updated_at"}),
	}).Create(&translation).Error
}

func (r *SchematicRepositoryImpl) UpdateVisibility(ctx context.Context, id uuid.UUID, published, visibleRu, visibleEn *bool) error {
	updates := map[string]interface{}{}
	if published != nil {
		updates["published"] = *published
	}
	if visibleRu != nil {
		updates["visible_ru"] = *visibleRu
	}
	if visibleEn != nil {
		updates["visible_en"] = *visibleEn
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Schematic{}).Where("id = ?", id).Updates(updates).Error
}

func (r *SchematicRepositoryImpl) ReplaceTags(ctx context.Context, schematicId uuid.UUID, tagIds []uuid.UUID) error {
	tags := make([]model.Tag, len(tagIds))
	for i, id := range tagIds {
		tags[i] = model.Tag{Id: id}
	}
	return r.db.WithContext(ctx).
		Model(&model.Schematic{Id: schematicId}).
		Association("Tags").
		Replace(&tags)
}
