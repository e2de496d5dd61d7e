package implementation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"literinth-be/internal/entity"
	"literinth-be/internal/mapper"
	"literinth-be/internal/model"
	"literinth-be/internal/repository/contract"
)

type LikeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SchematicMapper
}

func NewLikeRepository(db *gorm.DB) contract.LikeRepository {
	return &LikeRepositoryImpl{
		db:     db,
		mapper: mapper.NewSchematicMapper(),
	}
}

func (r *LikeRepositoryImpl) Create(ctx context.Context, like *entity.SchematicLike) error {
	m := &model.SchematicLike{
		UserId:      like.UserId,
		SchematicId: like.SchematicId,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*like = *r.mapper.LikeToEntity(m)
	return nil
}

func (r *LikeRepositoryImpl) DeleteByUserAndSchematic(ctx context.Context, userId, schematicId uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND schematic_id = ?", userId, schematicId).
		Delete(&model.SchematicLike{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *LikeRepositoryImpl) Exists(ctx context.Context, userId, schematicId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SchematicLike{}).
		Where("user_id = ? AND schematic_id = ?", userId, schematicId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *LikeRepositoryImpl) CountBySchematic(ctx context.Context, schematicId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SchematicLike{}).
		Where("schematic_id = ?", schematicId).
		Count(&count).Error
	return count, err
}

func (r *LikeRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SchematicLike{}).Count(&count).Error
	return count, err
}

func (r *LikeRepositoryImpl) CountBySchematicIDs(ctx context.Context, schematicIds []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(schematicIds))
	if len(schematicIds) == 0 {
		return counts, nil
	}

	type row struct {
		SchematicId uuid.UUID
		Total       int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.SchematicLike{}).
		Select("schematic_id", "COUNT(*) AS total").
		Where("schematic_id IN ?", schematicIds).
		Group("schematic_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.SchematicId] = r.Total
	}
	return counts, nil
}
