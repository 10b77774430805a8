package middleware

import (
	"strings"

	"zreyas-photo-service/config"
	"zreyas-photo-service/internal/error/code"
	"zreyas-photo-service/internal/error/response"
	"zreyas-photo-service/models"
	"zreyas-photo-service/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	jwtService services.InterfaceJWTService
	authDB     *gorm.DB
)

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg)
	authDB = db
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// parseClaims 解析请求中的令牌, 失败时写入401响应并中止
func parseClaims(c *gin.Context) (*services.JWTClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.FailWithMessage(c, code.ErrTokenInvalid, "No authorization token provided")
		c.Abort()
		return nil, false
	}

	claims, err := jwtService.ExtractClaims(extractToken(authHeader))
	if err != nil {
		response.Fail(c, code.ErrTokenInvalid)
		c.Abort()
		return nil, false
	}

	return claims, true
}

// AuthenticateAdmin 验证任意管理员权限 (admin 或 superadmin)
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseClaims(c)
		if !ok {
			return
		}

		if claims.Role != models.RoleAdmin && claims.Role != models.RoleSuperAdmin {
			response.Fail(c, code.ErrPermissionDenied)
			c.Abort()
			return
		}

		// 存储claims到上下文
		c.Set("adminID", claims.UserID)
		c.Set("adminUsername", claims.Username)
		c.Set("role", claims.Role)
		c.Set("claims", claims)
		c.Next()
	}
}

// AuthenticateSuperAdmin 验证超级管理员权限
// 不信任令牌中缓存的角色, 每次都从数据库重读实时角色,
// 避免降权后的旧令牌仍然通过校验
func AuthenticateSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseClaims(c)
		if !ok {
			return
		}

		var admin models.Admin
		if err := authDB.First(&admin, claims.UserID).Error; err != nil {
			response.Fail(c, code.ErrAdminNotFound)
			c.Abort()
			return
		}

		if admin.Role != models.RoleSuperAdmin {
			response.Fail(c, code.ErrSuperAdminRequired)
			c.Abort()
			return
		}

		c.Set("adminID", admin.ID)
		c.Set("adminUsername", admin.Username)
		c.Set("role", admin.Role)
		c.Set("claims", claims)
		c.Next()
	}
}
