package model

// Jadwal 课程安排表 — 对应 jadwal
// hari 存印尼语星期名（Senin..Minggu），jam 存 "HH:MM"
type Jadwal struct {
	IDJadwal   uint   `gorm:"column:id_jadwal;primaryKey;autoIncrement"     json:"id_jadwal"`
	IDGuru     uint   `gorm:"column:id_guru;not null"                      json:"id_guru"`
	IDKelas    uint   `gorm:"column:id_kelas;not null"                     json:"id_kelas"`
	IDMapel    uint   `gorm:"column:id_mapel;not null"                     json:"id_mapel"`
	Hari       string `gorm:"column:hari;type:varchar(10);not null"        json:"hari"`
	JamMulai   string `gorm:"column:jam_mulai;type:varchar(5);not null"    json:"jam_mulai"`
	JamSelesai string `gorm:"column:jam_selesai;type:varchar(5);not null"  json:"jam_selesai"`

	// 关联
	Guru  *Guru  `gorm:"foreignKey:IDGuru;references:IDGuru"    json:"guru,omitempty"`
	Kelas *Kelas `gorm:"foreignKey:IDKelas;references:IDKelas"  json:"kelas,omitempty"`
	Mapel *Mapel `gorm:"foreignKey:IDMapel;references:IDMapel"  json:"mapel,omitempty"`
}

// TableName 指定表名
func (Jadwal) TableName() string { return "jadwal" }

// [自证通过] internal/model/jadwal.go
