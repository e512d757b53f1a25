package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"budgetapp/config"
	"budgetapp/identity"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "userID"

var errInvalidToken = errors.New("无效的令牌")

// JWT 负责签发和校验访问令牌
type JWT struct {
	secret []byte
	expire time.Duration
}

// NewJWT 根据配置创建 JWT
func NewJWT(cfg config.JWTConfig) *JWT {
	expire := cfg.ExpireTime
	if expire <= 0 {
		expire = time.Duration(cfg.ExpireHours) * time.Hour
	}
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	return &JWT{secret: []byte(cfg.Secret), expire: expire}
}

// GenerateToken 签发令牌，sub 为用户 ID 的十进制字符串
func (j *JWT) GenerateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iat": now.Unix(),
		"exp": now.Add(j.expire).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

// ParseToken 校验签名和有效期，返回全部声明
// sub 的形状不做限制，交给 identity 解析
func (j *JWT) ParseToken(tokenString string) (jwt.MapClaims, error) {
	if tokenString == "" {
		return nil, errInvalidToken
	}
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}
	if !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}

// Resolver 把身份声明解析为用户 ID
type Resolver interface {
	Resolve(ctx context.Context, p identity.Principal) (uint, bool)
}

// JWTAuth 认证中间件
// 令牌无效或身份无法解析时一律返回 401
func JWTAuth(j *JWT, resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			abortUnauthorized(c, "缺少认证令牌")
			return
		}

		claims, err := j.ParseToken(tokenString)
		if err != nil {
			abortUnauthorized(c, "令牌无效或已过期")
			return
		}

		userID, ok := resolver.Resolve(c.Request.Context(), identity.FromClaim(claims["sub"]))
		if !ok {
			abortUnauthorized(c, "无法识别当前用户")
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":    http.StatusUnauthorized,
		"message": message,
	})
}

// GetCurrentUserID 获取当前用户 ID，未认证时返回 0
func GetCurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
