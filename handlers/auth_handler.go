package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/meePwn1/maqsad-back/configs"
	"github.com/meePwn1/maqsad-back/database"
	"github.com/meePwn1/maqsad-back/middleware"
	"github.com/meePwn1/maqsad-back/models"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Missing user and wrong password produce the same response.
	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		log.Printf("Failed login attempt for %s", req.Email)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Printf("Failed login attempt for %s", req.Email)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	tokens, err := issueTokens(user)
	if err != nil {
		log.Printf("Failed to issue tokens: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	if err := storeRefreshHash(user.ID.String(), tokens.RefreshToken); err != nil {
		log.Printf("Failed to store refresh token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(tokens)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func RefreshToken(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	token, err := jwt.Parse(req.RefreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.Config("JWT_REFRESH_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	email, _ := claims["email"].(string)

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		log.Printf("Refresh token user lookup failed for %s", email)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	if user.RefreshToken == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	// A stale or already rotated token fails the stored-hash comparison.
	if !compareRefreshToken(*user.RefreshToken, req.RefreshToken) {
		log.Printf("Refresh token mismatch for %s", user.Email)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	tokens, err := issueTokens(user)
	if err != nil {
		log.Printf("Failed to issue tokens: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}
	if err := storeRefreshHash(user.ID.String(), tokens.RefreshToken); err != nil {
		log.Printf("Failed to rotate refresh token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(tokens)
}

func Logout(c *fiber.Ctx) error {
	claims := middleware.TokenClaims(c)
	email, _ := claims["email"].(string)

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}
	if user.RefreshToken == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not logged in"})
	}

	if err := database.DB.Model(&user).Update("refresh_token", nil).Error; err != nil {
		log.Printf("Failed to clear refresh token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to log out"})
	}

	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func issueTokens(user models.User) (TokenPair, error) {
	accessTTL, err := time.ParseDuration(config.ConfigOr("JWT_EXPIRES_IN", "15m"))
	if err != nil {
		return TokenPair{}, err
	}
	refreshTTL, err := time.ParseDuration(config.ConfigOr("JWT_REFRESH_IN", "168h"))
	if err != nil {
		return TokenPair{}, err
	}

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
	}

	access, err := signToken(claims, config.Config("JWT_ACCESS_SECRET"), accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := signToken(claims, config.Config("JWT_REFRESH_SECRET"), refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func signToken(base jwt.MapClaims, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{"exp": time.Now().Add(ttl).Unix()}
	for k, v := range base {
		claims[k] = v
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func storeRefreshHash(userID, refreshToken string) error {
	hash, err := hashRefreshToken(refreshToken)
	if err != nil {
		return err
	}
	return database.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("refresh_token", hash).Error
}

// hashRefreshToken digests the token before bcrypt, JWTs exceed bcrypt's
// 72-byte input limit.
func hashRefreshToken(token string) (string, error) {
	digest := sha256.Sum256([]byte(token))
	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(digest[:])), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func compareRefreshToken(storedHash, token string) bool {
	digest := sha256.Sum256([]byte(token))
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(hex.EncodeToString(digest[:]))) == nil
}
