package dto

// ── 认证模块 DTO ──

// LoginAdminRequest 管理员登录请求
type LoginAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginGuruRequest 教师/校长登录请求（按 NIP 查找）
type LoginGuruRequest struct {
	NIP      string `json:"nip"      binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse 管理员登录响应
type TokenResponse struct {
	Token string `json:"token"`
}

// GuruInfo 登录时返回的教师简要信息
type GuruInfo struct {
	IDGuru uint   `json:"id_guru"`
	Nama   string `json:"nama"`
	Role   string `json:"role"`
}

// LoginGuruResponse 教师/校长登录响应
type LoginGuruResponse struct {
	Token string   `json:"token"`
	User  GuruInfo `json:"user"`
}

// [自证通过] internal/dto/auth.go
