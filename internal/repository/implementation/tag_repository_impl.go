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

type TagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TagMapper
}

func NewTagRepository(db *gorm.DB) contract.TagRepository {
	return &TagRepositoryImpl{
		db:     db,
		mapper: mapper.NewTagMapper(),
	}
}

func (r *TagRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TagRepositoryImpl) Create(ctx context.Context, tag *entity.Tag) error {
	m := r.mapper.ToModel(tag)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	tag.Id = m.Id
	tag.CreatedAt = m.CreatedAt
	tag.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TagRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error) {
	var m model.Tag
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TagRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	var models []*model.Tag
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TagRepositoryImpl) FindOrCreateBySlug(ctx context.Context, slug, name string, loc locale.Locale) (*entity.Tag, error) {
	var m model.Tag
	err := r.db.WithContext(ctx).
		Preload("Translations").
		Where("slug = ?", slug).
		First(&m).Error
	if err == nil {
		return r.mapper.ToEntity(&m), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	m = model.Tag{Slug: slug}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(&m).Error; err != nil {
		return nil, err
	}
	// A concurrent insert may have won the conflict; re-read by slug.
	if m.Id == uuid.Nil {
		if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
			return nil, err
		}
	}

	translation := model.TagTranslation{
		TagId:  m.Id,
		Locale: string(loc),
		Name:   name,
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tag_id"}, {Name: "locale"}},
		DoNothing: true,
	}).Create(&translation).Error; err != nil {
		return nil, err
	}
	m.Translations = []model.TagTranslation{translation}

	return r.mapper.ToEntity(&m), nil
}
