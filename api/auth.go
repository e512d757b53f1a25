package api

import (
	"budgetapp/middleware"
	"budgetapp/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 注册、登录和当前用户
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Name     string `json:"name" example:"Ana"`
	Password string `json:"password" example:"Lozinka123"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"Lozinka123"`
}

// Register 用户注册
// @Summary 用户注册
// @Description 创建账号并自动创建默认类别 Plata、Hrana、Prevoz、Stanarina。密码至少 8 位，需包含大写字母、小写字母以及数字或符号
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 201 {object} service.AuthResult "注册成功"
// @Failure 400 {object} Response "请求参数错误或密码强度不足"
// @Failure 409 {object} Response "邮箱已注册"
// @Failure 429 {object} Response "请求过于频繁"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.auth.Register(c.Request.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, res)
}

// Login 用户登录
// @Summary 用户登录
// @Description 使用邮箱和密码登录，获取访问令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} service.AuthResult "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "邮箱或密码错误"
// @Failure 429 {object} Response "请求过于频繁"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, res)
}

// Me 当前用户信息
// @Summary 获取当前用户信息
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.auth.Whoami(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		Fail(c, err)
		return
	}
	OK(c, profile)
}
