package user

import (
	"net/http"
	"strconv"
	"time"

	"cloudpix/files-api/internal"
	"cloudpix/files-api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const tokenLifetime = time.Hour * 24 * 30

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func UserLogin(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if data.Email == "" || data.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Email and password fields can't be empty",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	if err := d.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// Same response as a bad password so emails can't be probed
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":     "Invalid email or password",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	ok, err := d.Argon.VerifyPasswd(data.Password, user.PasswordHash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to verify password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":     "Invalid email or password",
			"requestID": requestID,
		})
		return
	}

	now := time.Now()
	if err := d.DB.Model(&user).Update("last_login_at", now).Error; err != nil {
		zap.L().Warn("Failed to update last login time", zap.Error(err), zap.String("requestID", requestID))
	}

	token, err := makeToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate JWT auth token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	setAuthCookies(c, user.ID, token)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"userId": user.ID,
			"email":  user.Email,
		},
	})
}

func makeToken(userID string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"type":    "auth",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	})
	return t.SignedString([]byte(viper.GetString("security.jwt_secret")))
}

func setAuthCookies(c *gin.Context, userID, token string) {
	sslEnabled, err := strconv.ParseBool(viper.GetString("host.ssl_enabled"))
	if err != nil {
		sslEnabled = false
	}

	maxAge := int(tokenLifetime.Seconds())

	c.SetCookie("user_id", userID, maxAge, "/", "", sslEnabled, false)
	c.SetCookie("auth_token", token, maxAge, "/", "", sslEnabled, true)
}
