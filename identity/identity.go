// Package identity 把令牌里的身份声明解析为用户 ID
//
// 声明可能是整数 ID、字符串（数字或邮箱）或带 id / sub 字段的对象，
// 先通过 FromClaim 转为 Principal，再由 Resolver.Resolve 统一解析。
package identity

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Principal 已认证的身份声明
type Principal interface {
	principal()
}

// IDPrincipal 直接携带用户 ID
type IDPrincipal int64

// EmailPrincipal 字符串形式的身份，包含 @ 时按邮箱查找用户
type EmailPrincipal string

// ClaimPrincipal 对象形式的身份，优先使用 ID，否则解析 Sub
type ClaimPrincipal struct {
	ID  *int64
	Sub Principal
}

func (IDPrincipal) principal()    {}
func (EmailPrincipal) principal() {}
func (ClaimPrincipal) principal() {}

// FromClaim 把 JWT 中的 sub 声明转换为 Principal，形状不认识时返回 nil
func FromClaim(v any) Principal {
	if id, ok := integral(v); ok {
		return IDPrincipal(id)
	}
	switch c := v.(type) {
	case string:
		s := strings.TrimSpace(c)
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			return IDPrincipal(id)
		}
		return EmailPrincipal(c)
	case map[string]any:
		var p ClaimPrincipal
		if id, ok := integral(c["id"]); ok {
			p.ID = &id
		}
		// 对象里的 sub 只认整数或邮箱字符串
		if id, ok := integral(c["sub"]); ok {
			p.Sub = IDPrincipal(id)
		} else if s, ok := c["sub"].(string); ok {
			p.Sub = EmailPrincipal(s)
		}
		return p
	}
	return nil
}

// integral 判断 JSON 值是否为整数
func integral(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.Abs(n) >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	}
	return 0, false
}

// EmailLookup 按邮箱查找用户 ID
type EmailLookup interface {
	UserIDByEmail(ctx context.Context, email string) (uint, error)
}

// Resolver 解析 Principal
type Resolver struct {
	users EmailLookup
}

func NewResolver(users EmailLookup) *Resolver {
	return &Resolver{users: users}
}

// Resolve 返回用户 ID；无法解析、查不到用户或查询出错都返回 false
func (r *Resolver) Resolve(ctx context.Context, p Principal) (uint, bool) {
	switch v := p.(type) {
	case IDPrincipal:
		if v <= 0 {
			return 0, false
		}
		return uint(v), true
	case EmailPrincipal:
		email := string(v)
		if !strings.Contains(email, "@") || r.users == nil {
			return 0, false
		}
		id, err := r.users.UserIDByEmail(ctx, email)
		if err != nil || id == 0 {
			return 0, false
		}
		return id, true
	case ClaimPrincipal:
		if v.ID != nil {
			return r.Resolve(ctx, IDPrincipal(*v.ID))
		}
		if v.Sub != nil {
			return r.Resolve(ctx, v.Sub)
		}
	}
	return 0, false
}
