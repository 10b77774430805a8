package services

import (
	"errors"

	"zreyas-photo-service/config"
	"zreyas-photo-service/models"
	"zreyas-photo-service/utils"

	"gorm.io/gorm"
)

// 管理员服务的业务错误
var (
	ErrAdminNotFound   = errors.New("admin not found")
	ErrAdminExists     = errors.New("username already exists")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidPassword = errors.New("invalid credentials")
	ErrSelfDelete      = errors.New("cannot delete own account")
	ErrNotSuperAdmin   = errors.New("superadmin required")
)

// InterfaceAdminService 定义管理员服务接口
type InterfaceAdminService interface {
	Authenticate(username, password string) (*models.Admin, error)
	GetAdminByID(id uint) (*models.Admin, error)
	GetAdminByUsername(username string) (*models.Admin, error)
	GetAllAdmins() ([]models.Admin, error)
	CreateAdmin(username, password, role string) (*models.Admin, error)
	DeleteAdmin(id, requestorID uint) error
	RequireSuperAdmin(username string) (*models.Admin, error)
	EnsureSuperAdminExists(password string) error
}

// AdminService 提供管理员相关的服务
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService 创建一个新的管理员服务
func NewAdminService(db *gorm.DB, cfg *config.Config) *AdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// Authenticate 校验用户名和密码
// 用户不存在与密码错误返回同一个错误, 避免用户名枚举
func (s *AdminService) Authenticate(username, password string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidPassword
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, admin.Password) {
		return nil, ErrInvalidPassword
	}

	return &admin, nil
}

// GetAdminByID 根据ID获取管理员
func (s *AdminService) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// GetAdminByUsername 根据用户名获取管理员
func (s *AdminService) GetAdminByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// GetAllAdmins 获取所有管理员, 按创建时间倒序
func (s *AdminService) GetAllAdmins() ([]models.Admin, error) {
	var admins []models.Admin
	if err := s.DB.Order("created_at DESC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

// CreateAdmin 创建新管理员
func (s *AdminService) CreateAdmin(username, password, role string) (*models.Admin, error) {
	if !models.IsValidRole(role) {
		return nil, ErrInvalidRole
	}

	// 验证用户名唯一性
	var count int64
	if err := s.DB.Model(&models.Admin{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAdminExists
	}

	// 设置密码哈希
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Username: username,
		Password: hashedPassword,
		Role:     role,
	}
	if err := s.DB.Create(admin).Error; err != nil {
		return nil, err
	}
	return admin, nil
}

// DeleteAdmin 删除管理员, 禁止删除自己的账户
func (s *AdminService) DeleteAdmin(id, requestorID uint) error {
	if id == requestorID {
		return ErrSelfDelete
	}

	admin, err := s.GetAdminByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(admin).Error
}

// RequireSuperAdmin 按用户名从数据库读取实时角色, 非超级管理员返回错误
// 令牌中缓存的角色可能过期, 涉及权限的操作必须走这里
func (s *AdminService) RequireSuperAdmin(username string) (*models.Admin, error) {
	admin, err := s.GetAdminByUsername(username)
	if err != nil {
		return nil, err
	}
	if admin.Role != models.RoleSuperAdmin {
		return nil, ErrNotSuperAdmin
	}
	return admin, nil
}

// EnsureSuperAdminExists 确保系统中存在超级管理员账户
// 账户不存在时创建, 角色被改动过时修复
func (s *AdminService) EnsureSuperAdminExists(password string) error {
	var admin models.Admin
	err := s.DB.Where("username = ?", "superadmin").First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_, err = s.CreateAdmin("superadmin", password, models.RoleSuperAdmin)
		if err == nil {
			config.Info("Super Admin created")
		}
		return err
	}
	if err != nil {
		return err
	}

	if admin.Role != models.RoleSuperAdmin || !admin.IsSuperAdmin {
		admin.Role = models.RoleSuperAdmin
		if err := s.DB.Save(&admin).Error; err != nil {
			return err
		}
		config.Info("Existing Super Admin role updated")
	}
	return nil
}
