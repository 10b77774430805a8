package routes

import (
	"zreyas-photo-service/config"
	"zreyas-photo-service/controllers"
	_ "zreyas-photo-service/docs"
	"zreyas-photo-service/internal/error/response"
	"zreyas-photo-service/middleware"
	"zreyas-photo-service/services/container"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin, panic统一恢复为标准错误响应
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		config.Error("Recovered from panic: %v", recovered)
		response.ServerError(c)
		c.Abort()
	}))

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg, db)

	// 本地存储模式下直接挂载静态上传目录
	if cfg.StorageDriver == "local" {
		r.Static("/uploads", cfg.UploadDir)
	}

	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")

	// 健康检查
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 参与者路由 (无需认证, 身份由密钥承载)
	participants := api.Group("/participants")
	{
		participants.POST("/create", controllers.HandleParticipantFunc(container, "createParticipant"))
		participants.POST("/login", controllers.HandleParticipantFunc(container, "login"))
	}

	// 管理员路由
	admin := api.Group("/admin")
	{
		admin.POST("/login", controllers.HandleAdminFunc(container, "login"))
		admin.GET("/verify", middleware.AuthenticateAdmin(), controllers.HandleAdminFunc(container, "verify"))
		admin.GET("/all", middleware.AuthenticateSuperAdmin(), controllers.HandleAdminFunc(container, "getAdmins"))
		admin.POST("/create", middleware.AuthenticateSuperAdmin(), controllers.HandleAdminFunc(container, "createAdmin"))
		admin.DELETE("/delete/:id", middleware.AuthenticateSuperAdmin(), controllers.HandleAdminFunc(container, "deleteAdmin"))
	}

	// 照片路由
	photos := api.Group("/photos")
	{
		photos.POST("/upload", controllers.HandlePhotoFunc(container, "uploadPhoto"))
		photos.GET("/participant/:uniqueString", controllers.HandlePhotoFunc(container, "getParticipantPhotos"))
		photos.GET("/all", controllers.HandlePhotoFunc(container, "getAllPhotos"))
		photos.DELETE("/delete/:id", controllers.HandlePhotoFunc(container, "deletePhoto"))
		photos.DELETE("/admin/:id", middleware.AuthenticateSuperAdmin(), controllers.HandlePhotoFunc(container, "deletePhotoAsAdmin"))
		photos.POST("/like/:id", controllers.HandlePhotoFunc(container, "toggleLike"))
		photos.PATCH("/winner/:id", controllers.HandlePhotoFunc(container, "declareWinner"))
	}

	// 获奖路由
	winners := api.Group("/winners")
	{
		winners.DELETE("/remove/:photoId", controllers.HandleWinnerFunc(container, "removeWinner"))
		winners.POST("/claim", controllers.HandleWinnerFunc(container, "claimPrize"))
		winners.PUT("/edit", controllers.HandleWinnerFunc(container, "editClaim"))
		winners.GET("/photo/:photoId", controllers.HandleWinnerFunc(container, "getWinnerByPhoto"))
		winners.GET("/all", controllers.HandleWinnerFunc(container, "getAllWinners"))
		winners.GET("/leaderboard", controllers.HandleWinnerFunc(container, "getLeaderboard"))
	}
}
