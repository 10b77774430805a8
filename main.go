// @title           Zreyas Photography Event API
// @version         1.0
// @description     Backend service for the Zreyas photo contest: pseudonymous participants upload photos, admins like them, the superadmin declares winners and participants claim prizes.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"os"

	"zreyas-photo-service/config"
	"zreyas-photo-service/models"
	"zreyas-photo-service/routes"
	"zreyas-photo-service/services"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	// 初始化日志配置
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		config.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		config.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 连接数据库
	db, err := initDB(cfg)
	if err != nil {
		config.Error("无法连接数据库: %v", err)
		os.Exit(1)
	}

	// 自动迁移数据表
	if err := autoMigrate(db); err != nil {
		config.Error("自动迁移失败: %v", err)
		os.Exit(1)
	}

	// 确保系统中有超级管理员账户
	ensureSuperAdminExists(db, cfg)

	// 本地存储模式下确保上传目录存在
	if cfg.StorageDriver == "local" {
		if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
			config.Error("创建上传目录失败: %v", err)
			os.Exit(1)
		}
	}

	// 创建Redis客户端, 连接失败时容器内部会自动降级为无缓存
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	// 初始化路由
	r := routes.SetupRouter(db, cfg, redisClient)

	// 启动服务器
	config.Info("服务器启动在: http://localhost:%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		config.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// initDB 初始化数据库连接
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	fmt.Println("Database connection established")
	return db, nil
}

// autoMigrate 自动迁移所有模型（只添加新列和新表）
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Admin{},
		&models.Participant{},
		&models.Photo{},
		&models.Winner{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// ensureSuperAdminExists 确保系统启动时存在超级管理员
func ensureSuperAdminExists(db *gorm.DB, cfg *config.Config) {
	adminService := services.NewAdminService(db, cfg)
	if err := adminService.EnsureSuperAdminExists(cfg.SuperAdminPassword); err != nil {
		config.Error("初始化超级管理员失败: %v", err)
	}
}
