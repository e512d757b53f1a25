package service

import (
	"context"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"budgetapp/apperr"
	"budgetapp/logger"
	"budgetapp/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenIssuer 签发访问令牌
type TokenIssuer interface {
	GenerateToken(userID uint) (string, error)
}

// WelcomeMailer 发送注册欢迎邮件
type WelcomeMailer interface {
	SendWelcomeEmail(toEmail, name string) error
}

// AuthResult 注册/登录返回
type AuthResult struct {
	AccessToken string         `json:"access_token"`
	User        models.Profile `json:"user"`
}

// AuthService 注册、登录与当前用户查询
type AuthService struct {
	db     *gorm.DB
	tokens TokenIssuer
	mailer WelcomeMailer
	log    *logger.Logger
}

// NewAuthService mailer 为 nil 时不发送欢迎邮件
func NewAuthService(db *gorm.DB, tokens TokenIssuer, mailer WelcomeMailer, log *logger.Logger) *AuthService {
	return &AuthService{
		db:     db,
		tokens: tokens,
		mailer: mailer,
		log:    log.WithComponent("auth"),
	}
}

// ValidPassword 至少 8 个字符，同时包含大写字母、小写字母以及数字或符号
func ValidPassword(p string) bool {
	if utf8.RuneCountInString(p) < 8 {
		return false
	}
	var upper, lower, digitOrSymbol bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case unicode.IsDigit(r):
			digitOrSymbol = true
		case !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '_':
			digitOrSymbol = true
		}
	}
	return upper && lower && digitOrSymbol
}

// Register 注册新用户并创建默认类别
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, apperr.Validation("姓名不能为空")
	}
	if email == "" || password == "" {
		return nil, apperr.Validation("邮箱和密码不能为空")
	}
	if !ValidPassword(password) {
		return nil, apperr.Validation("密码至少 8 位，且必须包含大写字母、小写字母以及数字或符号")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperr.Validation("密码过长")
	}
	if err != nil {
		return nil, apperr.Internal("密码加密失败", err)
	}

	user := models.User{Email: email, Name: name, PasswordHash: string(hash)}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return apperr.Internal("查询用户失败", err)
		}
		if count > 0 {
			return apperr.Conflict("邮箱已被注册")
		}

		if err := tx.Create(&user).Error; err != nil {
			if isUniqueViolation(err) {
				return apperr.Conflict("邮箱已被注册")
			}
			return apperr.Internal("创建用户失败", err)
		}

		defaults := models.DefaultCategories()
		cats := make([]models.Category, 0, len(defaults))
		for _, d := range defaults {
			cats = append(cats, models.Category{UserID: user.ID, Name: d.Name, Type: d.Type})
		}
		if err := tx.Create(&cats).Error; err != nil {
			return apperr.Internal("创建默认类别失败", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("用户注册成功", logger.FieldUserID, user.ID)
	s.sendWelcome(user)
	return result, nil
}

// sendWelcome 异步发送欢迎邮件，失败只记日志
func (s *AuthService) sendWelcome(user models.User) {
	if s.mailer == nil {
		return
	}
	go func() {
		if err := s.mailer.SendWelcomeEmail(user.Email, user.Name); err != nil {
			s.log.Warn("发送欢迎邮件失败", logger.FieldUserID, user.ID, logger.FieldError, err)
		}
	}()
}

// Login 邮箱密码登录，用户不存在和密码错误返回同样的提示
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("查询用户失败", err)
	}
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperr.Unauthenticated("邮箱或密码错误")
	}

	return s.issue(user)
}

func (s *AuthService) issue(user models.User) (*AuthResult, error) {
	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, apperr.Internal("生成令牌失败", err)
	}
	return &AuthResult{AccessToken: token, User: user.Profile()}, nil
}

// Whoami 返回当前用户公开信息
func (s *AuthService) Whoami(ctx context.Context, userID uint) (*models.Profile, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Unauthenticated("用户不存在")
	}
	if err != nil {
		return nil, apperr.Internal("查询用户失败", err)
	}
	profile := user.Profile()
	return &profile, nil
}

// UserIDByEmail 按邮箱精确查找用户 ID
func (s *AuthService) UserIDByEmail(ctx context.Context, email string) (uint, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Select("id").Where("email = ?", email).First(&user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}
