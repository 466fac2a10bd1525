package model

// Jurusan 专业表 — 对应 jurusan
type Jurusan struct {
	IDJurusan   uint   `gorm:"column:id_jurusan;primaryKey;autoIncrement"    json:"id_jurusan"`
	NamaJurusan string `gorm:"column:nama_jurusan;type:varchar(100);not null;unique" json:"nama_jurusan"`
}

// TableName 指定表名
func (Jurusan) TableName() string { return "jurusan" }

// [自证通过] internal/model/jurusan.go
