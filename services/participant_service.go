package services

import (
	"errors"

	"zreyas-photo-service/config"
	"zreyas-photo-service/models"
	"zreyas-photo-service/utils"

	"gorm.io/gorm"
)

// 参与者服务的业务错误
var (
	ErrParticipantCollision   = errors.New("unique string already exists")
	ErrParticipantCredentials = errors.New("invalid participant credentials")
)

// InterfaceParticipantService 定义参与者服务接口
type InterfaceParticipantService interface {
	CreateParticipant() (*models.Participant, error)
	Login(uniqueString, randomName string) (*models.Participant, error)
	GetByUniqueString(uniqueString string) (*models.Participant, error)
}

// ParticipantService 提供参与者账户相关的服务
type ParticipantService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewParticipantService 创建一个新的参与者服务
func NewParticipantService(db *gorm.DB, cfg *config.Config) *ParticipantService {
	return &ParticipantService{
		DB:     db,
		Config: cfg,
	}
}

// CreateParticipant 铸造一个新的参与者身份
// 身份密钥为32位十六进制随机串, 昵称为"形容词-颜色-国家"组合
// 密钥撞库时返回冲突错误, 由客户端重试, 绝不覆盖已有记录
func (s *ParticipantService) CreateParticipant() (*models.Participant, error) {
	uniqueString, err := utils.GenerateUniqueString()
	if err != nil {
		return nil, err
	}

	// 检查密钥是否已被占用
	var count int64
	if err := s.DB.Model(&models.Participant{}).Where("unique_string = ?", uniqueString).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrParticipantCollision
	}

	participant := &models.Participant{
		UniqueString: uniqueString,
		RandomName:   utils.GenerateRandomName(),
	}
	if err := s.DB.Create(participant).Error; err != nil {
		return nil, err
	}
	return participant, nil
}

// Login 通过(密钥, 昵称)二元组的精确匹配验证参与者身份
func (s *ParticipantService) Login(uniqueString, randomName string) (*models.Participant, error) {
	var participant models.Participant
	err := s.DB.Where("unique_string = ? AND random_name = ?", uniqueString, randomName).First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantCredentials
		}
		return nil, err
	}
	return &participant, nil
}

// GetByUniqueString 根据身份密钥查询参与者
func (s *ParticipantService) GetByUniqueString(uniqueString string) (*models.Participant, error) {
	var participant models.Participant
	err := s.DB.Where("unique_string = ?", uniqueString).First(&participant).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}
