package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/codewithamasu/e-jurnal/internal/dto"
	"github.com/codewithamasu/e-jurnal/internal/model"
	"github.com/codewithamasu/e-jurnal/internal/service"
	"github.com/codewithamasu/e-jurnal/pkg/response"
)

// 手写服务 Mock，测试按需覆盖字段

type mockAuthService struct {
	loginAdminFn func(ctx context.Context, req *dto.LoginAdminRequest) (*dto.TokenResponse, error)
	loginGuruFn  func(ctx context.Context, req *dto.LoginGuruRequest) (*dto.LoginGuruResponse, error)
}

func (m *mockAuthService) LoginAdmin(ctx context.Context, req *dto.LoginAdminRequest) (*dto.TokenResponse, error) {
	return m.loginAdminFn(ctx, req)
}

func (m *mockAuthService) LoginGuru(ctx context.Context, req *dto.LoginGuruRequest) (*dto.LoginGuruResponse, error) {
	return m.loginGuruFn(ctx, req)
}

type mockRekapService struct {
	rekapFn func(ctx context.Context, t time.Time) (*dto.RekapMingguanResponse, error)
}

func (m *mockRekapService) RekapMingguan(ctx context.Context, t time.Time) (*dto.RekapMingguanResponse, error) {
	return m.rekapFn(ctx, t)
}

type mockKepsekService struct {
	listJurnalFn   func(ctx context.Context) ([]model.JurnalHarian, error)
	detailJurnalFn func(ctx context.Context, id uint) (*dto.JurnalDetailResponse, error)
}

func (m *mockKepsekService) ListJurnal(ctx context.Context) ([]model.JurnalHarian, error) {
	return m.listJurnalFn(ctx)
}

func (m *mockKepsekService) DetailJurnal(ctx context.Context, id uint) (*dto.JurnalDetailResponse, error) {
	return m.detailJurnalFn(ctx, id)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func performJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	return resp
}

func TestAuthHandlerLoginGuru(t *testing.T) {
	newRouter := func(svc service.AuthService) *gin.Engine {
		h := NewAuthHandler(svc, zap.NewNop())
		r := gin.New()
		r.POST("/api/auth/login", h.LoginGuru)
		return r
	}

	t.Run("登录成功返回 Token 与用户", func(t *testing.T) {
		r := newRouter(&mockAuthService{
			loginGuruFn: func(_ context.Context, req *dto.LoginGuruRequest) (*dto.LoginGuruResponse, error) {
				return &dto.LoginGuruResponse{
					Token: "token-abc",
					User:  dto.GuruInfo{IDGuru: 7, Nama: "Budi", Role: "guru"},
				}, nil
			},
		})

		w := performJSON(r, http.MethodPost, "/api/auth/login",
			gin.H{"nip": "19801231", "password": "x"})
		if w.Code != http.StatusOK {
			t.Fatalf("期望 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "token-abc") {
			t.Fatal("响应应包含 Token")
		}
	})

	t.Run("NIP 不存在返回 404", func(t *testing.T) {
		r := newRouter(&mockAuthService{
			loginGuruFn: func(context.Context, *dto.LoginGuruRequest) (*dto.LoginGuruResponse, error) {
				return nil, service.ErrNIPNotFound
			},
		})

		w := performJSON(r, http.MethodPost, "/api/auth/login",
			gin.H{"nip": "404", "password": "x"})
		if w.Code != http.StatusNotFound {
			t.Fatalf("期望 404, got %d", w.Code)
		}
		resp := decodeEnvelope(t, w)
		if resp.Message != "NIP tidak ditemukan" {
			t.Fatalf("消息不符: %q", resp.Message)
		}
	})

	t.Run("admin 走教师入口返回 403", func(t *testing.T) {
		r := newRouter(&mockAuthService{
			loginGuruFn: func(context.Context, *dto.LoginGuruRequest) (*dto.LoginGuruResponse, error) {
				return nil, service.ErrAdminLoginTerpisah
			},
		})

		w := performJSON(r, http.MethodPost, "/api/auth/login",
			gin.H{"nip": "1", "password": "x"})
		if w.Code != http.StatusForbidden {
			t.Fatalf("期望 403, got %d", w.Code)
		}
		resp := decodeEnvelope(t, w)
		if resp.Message != "Login Admin ada di halaman terpisah." {
			t.Fatalf("消息不符: %q", resp.Message)
		}
	})

	t.Run("密码错误返回 401", func(t *testing.T) {
		r := newRouter(&mockAuthService{
			loginGuruFn: func(context.Context, *dto.LoginGuruRequest) (*dto.LoginGuruResponse, error) {
				return nil, service.ErrPasswordSalah
			},
		})

		w := performJSON(r, http.MethodPost, "/api/auth/login",
			gin.H{"nip": "1", "password": "salah"})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("期望 401, got %d", w.Code)
		}
		resp := decodeEnvelope(t, w)
		if resp.Message != "Password salah" {
			t.Fatalf("消息不符: %q", resp.Message)
		}
	})

	t.Run("缺字段返回 400 校验错误", func(t *testing.T) {
		r := newRouter(&mockAuthService{})

		w := performJSON(r, http.MethodPost, "/api/auth/login", gin.H{"nip": "1"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("期望 400, got %d", w.Code)
		}
		resp := decodeEnvelope(t, w)
		if resp.Code != CodeValidation {
			t.Fatalf("期望校验错误码 %d, got %d", CodeValidation, resp.Code)
		}
	})
}

func newKepsekRouter(kepsek service.KepsekService, rekap service.RekapService) *gin.Engine {
	h := NewKepsekHandler(kepsek, rekap, nil, zap.NewNop())
	r := gin.New()
	r.GET("/api/kepsek/jurnal/:id_jurnal", h.DetailJurnal)
	r.GET("/api/kepsek/rekap/mingguan", h.RekapMingguan)
	return r
}

func TestKepsekHandlerRekapMingguan(t *testing.T) {
	t.Run("tanggal 参数决定聚合窗口", func(t *testing.T) {
		r := newKepsekRouter(nil, &mockRekapService{
			rekapFn: func(_ context.Context, tgl time.Time) (*dto.RekapMingguanResponse, error) {
				if tgl.Format("2006-01-02") != "2025-11-05" {
					t.Fatalf("期望透传查询日期, got %v", tgl)
				}
				return &dto.RekapMingguanResponse{
					RentangTanggal: dto.RentangTanggal{Mulai: "2025-11-03", Selesai: "2025-11-09"},
					Data:           []dto.RekapSiswa{},
				}, nil
			},
		})

		w := performJSON(r, http.MethodGet, "/api/kepsek/rekap/mingguan?tanggal=2025-11-05", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("期望 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"mulai":"2025-11-03"`) {
			t.Fatalf("响应缺少 rentang_tanggal: %s", w.Body.String())
		}
	})

	t.Run("非法 tanggal 返回 400", func(t *testing.T) {
		r := newKepsekRouter(nil, &mockRekapService{})

		w := performJSON(r, http.MethodGet, "/api/kepsek/rekap/mingguan?tanggal=05-11-2025", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("期望 400, got %d", w.Code)
		}
		resp := decodeEnvelope(t, w)
		if resp.Code != CodeRekapTanggalInvalid {
			t.Fatalf("期望错误码 %d, got %d", CodeRekapTanggalInvalid, resp.Code)
		}
	})
}

func TestKepsekHandlerDetailJurnal(t *testing.T) {
	t.Run("不存在返回 404", func(t *testing.T) {
		r := newKepsekRouter(&mockKepsekService{
			detailJurnalFn: func(context.Context, uint) (*dto.JurnalDetailResponse, error) {
				return nil, service.ErrJurnalNotFound
			},
		}, nil)

		w := performJSON(r, http.MethodGet, "/api/kepsek/jurnal/99", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("期望 404, got %d", w.Code)
		}
	})

	t.Run("非数字 ID 返回 400", func(t *testing.T) {
		r := newKepsekRouter(&mockKepsekService{}, nil)

		w := performJSON(r, http.MethodGet, "/api/kepsek/jurnal/abc", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("期望 400, got %d", w.Code)
		}
	})
}

// [自证通过] internal/api/handler/handler_test.go
