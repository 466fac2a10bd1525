package handler

import (
	"go.uber.org/zap"

	"github.com/codewithamasu/e-jurnal/internal/service"
)

// 业务错误码分段约定：
//
//	10001        请求参数校验失败
//	10002-10005  认证/限流等通用网关错误（中间件使用）
//	110yy        认证模块
//	120yy        参考数据模块
//	130yy        教师侧（日志提交）
//	140yy        校长侧（审阅/汇总）
//	50000        服务器内部错误
const (
	CodeValidation = 10001

	CodeAuthAdminCredentials = 11001
	CodeAuthNIPNotFound      = 11002
	CodeAuthAdminTerpisah    = 11003
	CodeAuthPasswordSalah    = 11004

	CodeMasterNotFound   = 12001
	CodeMasterDuplicate  = 12002
	CodeMasterRefInvalid = 12003
	CodeMasterInUse      = 12004

	CodeJurnalTanggalInvalid = 13001
	CodeJurnalRefInvalid     = 13002
	CodeKelasKosong          = 13003

	CodeJurnalNotFound      = 14001
	CodeRekapTanggalInvalid = 14002
)

// Handler 所有 HTTP Handler 的聚合入口
type Handler struct {
	Auth    *AuthHandler
	Mapel   *MapelHandler
	Jurusan *JurusanHandler
	Kelas   *KelasHandler
	Siswa   *SiswaHandler
	Jadwal  *JadwalHandler
	Guru    *GuruHandler
	Kepsek  *KepsekHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth, logger),
		Mapel:   NewMapelHandler(svc.Mapel),
		Jurusan: NewJurusanHandler(svc.Jurusan),
		Kelas:   NewKelasHandler(svc.Kelas),
		Siswa:   NewSiswaHandler(svc.Siswa),
		Jadwal:  NewJadwalHandler(svc.Jadwal),
		Guru:    NewGuruHandler(svc.Guru, logger),
		Kepsek:  NewKepsekHandler(svc.Kepsek, svc.Rekap, svc.Export, logger),
	}
}

// [自证通过] internal/api/handler/handler.go
