package container

import (
	"context"
	"log"
	"sync"
	"time"

	"zreyas-photo-service/config"
	"zreyas-photo-service/services"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService     services.InterfaceJWTService
	storageService services.InterfaceStorageService
	redisService   services.InterfaceRedisService

	// 业务服务
	adminService       services.InterfaceAdminService
	participantService services.InterfaceParticipantService
	photoService       services.InterfacePhotoService
	winnerService      services.InterfaceWinnerService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)
	c.storageService = services.NewStorageService(c.config)

	// Redis可用时才初始化缓存服务
	var cache services.InterfaceRedisService
	if c.redis != nil {
		redisService := services.NewRedisService(c.config)
		c.redisService = redisService
		cache = redisService
	}

	// 初始化业务服务
	c.adminService = services.NewAdminService(c.db, c.config)
	c.participantService = services.NewParticipantService(c.db, c.config)
	c.photoService = services.NewPhotoService(c.db, c.config, c.storageService, cache)
	c.winnerService = services.NewWinnerService(c.db, c.config, cache)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "jwt":
		return c.jwtService
	case "storage":
		return c.storageService
	case "redis":
		return c.redisService
	case "admin":
		return c.adminService
	case "participant":
		return c.participantService
	case "photo":
		return c.photoService
	case "winner":
		return c.winnerService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig 获取配置
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}
