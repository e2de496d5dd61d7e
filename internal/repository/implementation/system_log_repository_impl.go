package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"literinth-be/internal/model"
	"literinth-be/internal/repository/contract"
	"literinth-be/internal/repository/specification"
)

type SystemLogRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemLogRepository(db *gorm.DB) contract.SystemLogRepository {
	return &SystemLogRepositoryImpl{db: db}
}

func (r *SystemLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SystemLogRepositoryImpl) Create(ctx context.Context, log *model.SystemLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *SystemLogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*model.SystemLog, error) {
	var entry model.SystemLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *SystemLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.SystemLog, error) {
	var logs []*model.SystemLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *SystemLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SystemLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
