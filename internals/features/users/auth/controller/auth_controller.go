// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authDto "schoolku_backend/internals/features/users/auth/dto"
	authModel "schoolku_backend/internals/features/users/auth/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/middlewares/auth"
)

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Secret   string
}

func NewAuthController(db *gorm.DB, v *validator.Validate, secret string) *AuthController {
	return &AuthController{DB: db, Validate: v, Secret: secret}
}

/* ===================== HANDLERS ===================== */

// POST /api/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req authDto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	db := ctl.DB.WithContext(c.UserContext())

	var user authModel.UserModel
	if err := db.First(&user, "user_username = ? AND user_is_active = TRUE", req.Username).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Wrong username or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Wrong username or password")
	}

	access, err := ctl.signAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	if err := ctl.issueRefreshToken(c, db, user.UserID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Login success", authDto.LoginResponse{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int64(accessTokenTTL.Seconds()),
		Role:        user.UserRole,
		Username:    user.UserUsername,
	})
}

// POST /api/refresh-token
func (ctl *AuthController) Refresh(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies("refresh_token"))
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}
	db := ctl.DB.WithContext(c.UserContext())

	hash := sha256.Sum256([]byte(raw))
	var rt authModel.RefreshTokenModel
	if err := db.First(&rt,
		"token_hash = ? AND revoked_at IS NULL AND expires_at > NOW()", hash[:]).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check refresh token")
	}

	var user authModel.UserModel
	if err := db.First(&user, "user_id = ? AND user_is_active = TRUE", rt.UserID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User no longer active")
	}

	// rotate: revoke the presented token before issuing a new pair
	now := time.Now()
	if err := db.Model(&rt).Update("revoked_at", &now).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to rotate refresh token")
	}

	access, err := ctl.signAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	if err := ctl.issueRefreshToken(c, db, user.UserID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue refresh token")
	}

	return helper.JsonOK(c, "Token refreshed", authDto.LoginResponse{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int64(accessTokenTTL.Seconds()),
		Role:        user.UserRole,
		Username:    user.UserUsername,
	})
}

// POST /api/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	if raw := strings.TrimSpace(c.Cookies("refresh_token")); raw != "" {
		hash := sha256.Sum256([]byte(raw))
		now := time.Now()
		ctl.DB.WithContext(c.UserContext()).
			Model(&authModel.RefreshTokenModel{}).
			Where("token_hash = ? AND revoked_at IS NULL", hash[:]).
			Update("revoked_at", &now)
	}

	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})

	return helper.JsonOK(c, "Logged out", nil)
}

// GET /api/a/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, _ := c.Locals(auth.LocUserID).(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user authModel.UserModel
	if err := ctl.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	return helper.JsonOK(c, "Profile fetched", user)
}

/* ===================== INTERNAL ===================== */

func (ctl *AuthController) signAccessToken(u *authModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      u.UserID.String(),
		"username": u.UserUsername,
		"role":     u.UserRole,
		"iat":      now.Unix(),
		"exp":      now.Add(accessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ctl.Secret))
}

func (ctl *AuthController) issueRefreshToken(c *fiber.Ctx, db *gorm.DB, userID uuid.UUID) error {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	raw := base64.RawURLEncoding.EncodeToString(buf)
	hash := sha256.Sum256([]byte(raw))

	ua := strings.TrimSpace(c.Get(fiber.HeaderUserAgent))
	ip := c.IP()
	rt := authModel.RefreshTokenModel{
		UserID:    userID,
		TokenHash: hash[:],
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if ua != "" {
		rt.UserAgent = &ua
	}
	if ip != "" {
		rt.IP = &ip
	}
	if err := db.Create(&rt).Error; err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    raw,
		Expires:  time.Now().Add(refreshTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
	return nil
}
