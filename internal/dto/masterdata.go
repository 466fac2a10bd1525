package dto

// ── 参考数据模块请求 DTO ──
//
// 响应直接序列化 model（json tag 即线上格式），仅请求走绑定校验

// CreateMapelRequest 创建科目
type CreateMapelRequest struct {
	NamaMapel string `json:"nama_mapel" binding:"required"`
}

// UpdateMapelRequest 更新科目
type UpdateMapelRequest struct {
	NamaMapel string `json:"nama_mapel" binding:"required"`
}

// CreateJurusanRequest 创建专业
type CreateJurusanRequest struct {
	NamaJurusan string `json:"nama_jurusan" binding:"required"`
}

// UpdateJurusanRequest 更新专业
type UpdateJurusanRequest struct {
	NamaJurusan string `json:"nama_jurusan" binding:"required"`
}

// CreateKelasRequest 创建班级（专业/班主任可空）
type CreateKelasRequest struct {
	NamaKelas   string `json:"nama_kelas" binding:"required"`
	IDJurusan   *uint  `json:"id_jurusan"`
	IDWaliKelas *uint  `json:"id_wali_kelas"`
}

// UpdateKelasRequest 更新班级
type UpdateKelasRequest struct {
	NamaKelas   string `json:"nama_kelas" binding:"required"`
	IDJurusan   *uint  `json:"id_jurusan"`
	IDWaliKelas *uint  `json:"id_wali_kelas"`
}

// CreateSiswaRequest 创建学生
type CreateSiswaRequest struct {
	NIS          string `json:"nis"           binding:"required"`
	NamaLengkap  string `json:"nama_lengkap"  binding:"required"`
	JenisKelamin string `json:"jenis_kelamin" binding:"required,oneof=L P"`
	IDKelas      uint   `json:"id_kelas"      binding:"required"`
}

// UpdateSiswaRequest 更新学生
type UpdateSiswaRequest struct {
	NIS          string `json:"nis"           binding:"required"`
	NamaLengkap  string `json:"nama_lengkap"  binding:"required"`
	JenisKelamin string `json:"jenis_kelamin" binding:"required,oneof=L P"`
	IDKelas      uint   `json:"id_kelas"      binding:"required"`
}

// CreateJadwalRequest 创建课程安排（给教师分配班级/科目）
type CreateJadwalRequest struct {
	IDGuru     uint   `json:"id_guru"     binding:"required"`
	IDKelas    uint   `json:"id_kelas"    binding:"required"`
	IDMapel    uint   `json:"id_mapel"    binding:"required"`
	Hari       string `json:"hari"        binding:"required"`
	JamMulai   string `json:"jam_mulai"   binding:"required"`
	JamSelesai string `json:"jam_selesai" binding:"required"`
}

// RegisterGuruRequest 注册教师/校长账号（仅管理员）
type RegisterGuruRequest struct {
	NIP         string `json:"nip"          binding:"required"`
	NamaLengkap string `json:"nama_lengkap" binding:"required"`
	Password    string `json:"password"     binding:"required,min=6"`
	Role        string `json:"role"         binding:"required,oneof=guru kepsek"`
	IsWaliKelas bool   `json:"is_wali_kelas"`
	IDJurusan   *uint  `json:"id_jurusan"`
}

// [自证通过] internal/dto/masterdata.go
