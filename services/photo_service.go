package services

import (
	"errors"

	"zreyas-photo-service/config"
	"zreyas-photo-service/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 照片服务的业务错误
var (
	ErrPhotoNotFound       = errors.New("photo not found")
	ErrPhotoNotOwner       = errors.New("not the photo owner")
	ErrClaimedWinnerDelete = errors.New("photo prize already claimed")
)

// 照片列表排序方式
const (
	SortByLikes  = "likes"
	SortByNewest = "newest"
)

// InterfacePhotoService 定义照片服务接口
type InterfacePhotoService interface {
	CreatePhoto(participantUniqueString, caption string, stored *StorageResult) (*models.Photo, error)
	GetPhotoByID(id uint) (*models.Photo, error)
	GetPhotosByParticipant(uniqueString string) ([]models.Photo, error)
	GetAllPhotos(sort string) ([]models.Photo, error)
	ToggleLike(photoID uint, adminUsername string) (*models.Photo, bool, error)
	DeletePhoto(photoID uint, requestorUniqueString string) error
	DeletePhotoAsAdmin(photoID uint) error
}

// PhotoService 提供照片生命周期相关的服务
type PhotoService struct {
	DB      *gorm.DB
	Config  *config.Config
	Storage InterfaceStorageService
	Cache   InterfaceRedisService // 可为nil, 此时不做缓存
}

// NewPhotoService 创建一个新的照片服务
func NewPhotoService(db *gorm.DB, cfg *config.Config, storage InterfaceStorageService, cache InterfaceRedisService) *PhotoService {
	return &PhotoService{
		DB:      db,
		Config:  cfg,
		Storage: storage,
		Cache:   cache,
	}
}

// CreatePhoto 上传完成后持久化照片记录
func (s *PhotoService) CreatePhoto(participantUniqueString, caption string, stored *StorageResult) (*models.Photo, error) {
	photo := &models.Photo{
		ParticipantUniqueString: participantUniqueString,
		Path:                    stored.URL,
		StorageKey:              stored.Key,
		Caption:                 caption,
	}
	if err := s.DB.Create(photo).Error; err != nil {
		return nil, err
	}

	s.invalidateCache()
	return photo, nil
}

// GetPhotoByID 根据ID获取照片
func (s *PhotoService) GetPhotoByID(id uint) (*models.Photo, error) {
	var photo models.Photo
	if err := s.DB.First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

// GetPhotosByParticipant 获取某参与者的全部照片, 按上传时间倒序
func (s *PhotoService) GetPhotosByParticipant(uniqueString string) ([]models.Photo, error) {
	var photos []models.Photo
	err := s.DB.Where("participant_unique_string = ?", uniqueString).
		Order("upload_date DESC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

// GetAllPhotos 获取全部照片
// 默认按点赞数倒序再按上传时间倒序; sort 为 "newest" 时只按上传时间
func (s *PhotoService) GetAllPhotos(sort string) ([]models.Photo, error) {
	if sort != SortByNewest {
		sort = SortByLikes
	}

	if s.Cache != nil {
		var cached []models.Photo
		if err := s.Cache.GetPhotoList(sort, &cached); err == nil {
			return cached, nil
		}
	}

	order := "likes DESC, upload_date DESC"
	if sort == SortByNewest {
		order = "upload_date DESC"
	}

	var photos []models.Photo
	if err := s.DB.Order(order).Find(&photos).Error; err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.CachePhotoList(sort, photos); err != nil {
			config.Warning("Failed to cache photo list: %v", err)
		}
	}
	return photos, nil
}

// ToggleLike 翻转某管理员对某照片的点赞状态
// 返回更新后的照片和本次操作是否为点赞 (false 表示取消点赞)
// 读改写在行锁事务内进行, 保证 likes == len(liked_by) 不被并发破坏
func (s *PhotoService) ToggleLike(photoID uint, adminUsername string) (*models.Photo, bool, error) {
	// 管理员必须存在
	var count int64
	if err := s.DB.Model(&models.Admin{}).Where("username = ?", adminUsername).Count(&count).Error; err != nil {
		return nil, false, err
	}
	if count == 0 {
		return nil, false, ErrAdminNotFound
	}

	var photo models.Photo
	var liked bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&photo, photoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPhotoNotFound
			}
			return err
		}

		idx := -1
		for i, username := range photo.LikedBy {
			if username == adminUsername {
				idx = i
				break
			}
		}

		if idx >= 0 {
			// 取消点赞
			photo.LikedBy = append(photo.LikedBy[:idx], photo.LikedBy[idx+1:]...)
			liked = false
		} else {
			// 点赞
			photo.LikedBy = append(photo.LikedBy, adminUsername)
			liked = true
		}
		photo.Likes = len(photo.LikedBy)

		return tx.Save(&photo).Error
	})
	if err != nil {
		return nil, false, err
	}

	s.invalidateCache()
	return &photo, liked, nil
}

// DeletePhoto 参与者删除自己的照片
// 奖品已被领取的获奖照片禁止参与者删除; 关联的获奖记录随事务一并删除
func (s *PhotoService) DeletePhoto(photoID uint, requestorUniqueString string) error {
	photo, err := s.GetPhotoByID(photoID)
	if err != nil {
		return err
	}

	if photo.ParticipantUniqueString != requestorUniqueString {
		return ErrPhotoNotOwner
	}

	var winner models.Winner
	err = s.DB.Where("photo_id = ?", photoID).First(&winner).Error
	if err == nil && winner.HasClaimed {
		return ErrClaimedWinnerDelete
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.deletePhotoRecord(photo)
}

// DeletePhotoAsAdmin 超级管理员删除任意照片, 不做所有权检查
// 即使奖品已被领取也会连同获奖记录一起删除
func (s *PhotoService) DeletePhotoAsAdmin(photoID uint) error {
	photo, err := s.GetPhotoByID(photoID)
	if err != nil {
		return err
	}
	return s.deletePhotoRecord(photo)
}

// deletePhotoRecord 尽力删除外部存储资产后, 在同一事务中删除照片和获奖记录
func (s *PhotoService) deletePhotoRecord(photo *models.Photo) error {
	// 外部存储删除失败只记日志, 不阻塞数据库删除
	if photo.StorageKey != "" && s.Storage != nil {
		if err := s.Storage.Delete(photo.StorageKey); err != nil {
			config.Warning("Failed to delete photo asset %s: %v", photo.StorageKey, err)
		}
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("photo_id = ?", photo.ID).Delete(&models.Winner{}).Error; err != nil {
			return err
		}
		return tx.Delete(photo).Error
	})
	if err != nil {
		return err
	}

	s.invalidateCache()
	return nil
}

func (s *PhotoService) invalidateCache() {
	if s.Cache != nil {
		s.Cache.InvalidateContestCaches()
	}
}
