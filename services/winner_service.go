package services

import (
	"errors"
	"time"

	"zreyas-photo-service/config"
	"zreyas-photo-service/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 获奖状态机的业务错误
var (
	ErrWinnerNotFound        = errors.New("winner record not found")
	ErrWinnerAlreadyDeclared = errors.New("photo already declared winner")
	ErrNotWinner             = errors.New("photo not marked as winner")
	ErrWinnerAlreadyClaimed  = errors.New("prize already claimed")
	ErrRemoveAfterClaim      = errors.New("cannot remove winner status after claim")
	ErrWinnerNotClaimed      = errors.New("prize not claimed yet")
)

// LeaderboardEntry 公开排行榜的单条投影
// 未领奖的获奖者显示占位文案, 参与者无法解析时显示 Anonymous
type LeaderboardEntry struct {
	ID              uint      `json:"id"`
	PhotoPath       string    `json:"photoPath"`
	ParticipantName string    `json:"participantName"`
	WinnerName      string    `json:"winnerName"`
	Sic             string    `json:"sic"`
	Year            string    `json:"year"`
	DeclaredAt      time.Time `json:"declaredAt"`
	HasClaimed      bool      `json:"hasClaimed"`
}

// InterfaceWinnerService 定义获奖状态机服务接口
type InterfaceWinnerService interface {
	DeclareWinner(photoID uint, adminUsername string) (*models.Photo, error)
	RemoveWinner(photoID uint, adminUsername string) (*models.Photo, error)
	ClaimPrize(photoID uint, participantUniqueString, name, sic, year string) (*models.Winner, error)
	EditClaim(photoID uint, participantUniqueString, name, sic, year string) (*models.Winner, error)
	GetWinnerByPhotoID(photoID uint) (*models.Winner, error)
	GetAllWinners() ([]models.Winner, error)
	GetLeaderboard() ([]LeaderboardEntry, error)
}

// WinnerService 提供获奖声明与领奖相关的服务
type WinnerService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  InterfaceRedisService // 可为nil
}

// NewWinnerService 创建一个新的获奖服务
func NewWinnerService(db *gorm.DB, cfg *config.Config, cache InterfaceRedisService) *WinnerService {
	return &WinnerService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

// requireSuperAdmin 校验操作者是数据库中实时角色为超级管理员的账户
// 不信任令牌里缓存的角色, 防止降权后的旧令牌继续生效
func (s *WinnerService) requireSuperAdmin(username string) error {
	var admin models.Admin
	if err := s.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotSuperAdmin
		}
		return err
	}
	if admin.Role != models.RoleSuperAdmin {
		return ErrNotSuperAdmin
	}
	return nil
}

// DeclareWinner 超级管理员将照片宣布为获奖作品
// 重复宣布返回冲突错误, 保证每张照片至多一条获奖记录
func (s *WinnerService) DeclareWinner(photoID uint, adminUsername string) (*models.Photo, error) {
	if err := s.requireSuperAdmin(adminUsername); err != nil {
		return nil, err
	}

	var photo models.Photo
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&photo, photoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPhotoNotFound
			}
			return err
		}

		if photo.IsWinner {
			return ErrWinnerAlreadyDeclared
		}

		photo.IsWinner = true
		if err := tx.Save(&photo).Error; err != nil {
			return err
		}

		winner := &models.Winner{
			PhotoID:    photo.ID,
			Name:       models.ClaimPending,
			Sic:        models.ClaimPending,
			Year:       models.ClaimPending,
			DeclaredBy: adminUsername,
		}
		return tx.Create(winner).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache()
	return &photo, nil
}

// RemoveWinner 超级管理员撤销照片的获奖状态
// 奖品已被领取后不允许撤销
func (s *WinnerService) RemoveWinner(photoID uint, adminUsername string) (*models.Photo, error) {
	if err := s.requireSuperAdmin(adminUsername); err != nil {
		return nil, err
	}

	var photo models.Photo
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&photo, photoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPhotoNotFound
			}
			return err
		}

		if !photo.IsWinner {
			return ErrNotWinner
		}

		var winner models.Winner
		if err := tx.Where("photo_id = ?", photoID).First(&winner).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWinnerNotFound
			}
			return err
		}

		if winner.HasClaimed {
			return ErrRemoveAfterClaim
		}

		photo.IsWinner = false
		if err := tx.Save(&photo).Error; err != nil {
			return err
		}
		return tx.Delete(&winner).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache()
	return &photo, nil
}

// ClaimPrize 参与者首次领奖, 填写真实姓名/SIC/年级并置领取标记
func (s *WinnerService) ClaimPrize(photoID uint, participantUniqueString, name, sic, year string) (*models.Winner, error) {
	var winner models.Winner
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		photo, err := s.checkClaimTarget(tx, photoID, participantUniqueString)
		if err != nil {
			return err
		}

		if err := tx.Where("photo_id = ?", photoID).First(&winner).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWinnerNotFound
			}
			return err
		}

		if winner.HasClaimed {
			return ErrWinnerAlreadyClaimed
		}

		winner.Name = name
		winner.Sic = sic
		winner.Year = year
		winner.HasClaimed = true
		if err := tx.Save(&winner).Error; err != nil {
			return err
		}

		// 照片上同步记录领取标记
		photo.HasClaimed = true
		return tx.Save(photo).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache()
	return &winner, nil
}

// EditClaim 参与者在领奖之后修改领奖信息, 领取标记保持不变
func (s *WinnerService) EditClaim(photoID uint, participantUniqueString, name, sic, year string) (*models.Winner, error) {
	var winner models.Winner
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.checkClaimTarget(tx, photoID, participantUniqueString); err != nil {
			return err
		}

		if err := tx.Where("photo_id = ?", photoID).First(&winner).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWinnerNotFound
			}
			return err
		}

		if !winner.HasClaimed {
			return ErrWinnerNotClaimed
		}

		winner.Name = name
		winner.Sic = sic
		winner.Year = year
		return tx.Save(&winner).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache()
	return &winner, nil
}

// checkClaimTarget 校验领奖目标: 照片存在、属于该参与者且已获奖
func (s *WinnerService) checkClaimTarget(tx *gorm.DB, photoID uint, participantUniqueString string) (*models.Photo, error) {
	var photo models.Photo
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&photo, photoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}

	if photo.ParticipantUniqueString != participantUniqueString {
		return nil, ErrPhotoNotOwner
	}

	if !photo.IsWinner {
		return nil, ErrNotWinner
	}

	return &photo, nil
}

// GetWinnerByPhotoID 根据照片ID获取获奖记录
func (s *WinnerService) GetWinnerByPhotoID(photoID uint) (*models.Winner, error) {
	var winner models.Winner
	if err := s.DB.Where("photo_id = ?", photoID).First(&winner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWinnerNotFound
		}
		return nil, err
	}
	return &winner, nil
}

// GetAllWinners 获取全部获奖记录, 附带照片, 按宣布时间倒序
func (s *WinnerService) GetAllWinners() ([]models.Winner, error) {
	var winners []models.Winner
	err := s.DB.Preload("Photo").Order("declared_at DESC").Find(&winners).Error
	if err != nil {
		return nil, err
	}
	return winners, nil
}

// GetLeaderboard 生成公开排行榜投影
// 未领奖显示 "Pending Claim"/"Pending"; 参与者解析失败显示 "Anonymous"
func (s *WinnerService) GetLeaderboard() ([]LeaderboardEntry, error) {
	if s.Cache != nil {
		var cached []LeaderboardEntry
		if err := s.Cache.GetLeaderboard(&cached); err == nil {
			return cached, nil
		}
	}

	winners, err := s.GetAllWinners()
	if err != nil {
		return nil, err
	}

	leaderboard := make([]LeaderboardEntry, 0, len(winners))
	for _, winner := range winners {
		entry := LeaderboardEntry{
			ID:              winner.ID,
			ParticipantName: "Anonymous",
			WinnerName:      "Pending Claim",
			Sic:             "Pending",
			Year:            "Pending",
			DeclaredAt:      winner.DeclaredAt,
			HasClaimed:      winner.HasClaimed,
		}

		if winner.Photo != nil {
			entry.PhotoPath = winner.Photo.Path

			var participant models.Participant
			err := s.DB.Where("unique_string = ?", winner.Photo.ParticipantUniqueString).First(&participant).Error
			if err == nil {
				entry.ParticipantName = participant.RandomName
			}
		}

		if winner.HasClaimed {
			entry.WinnerName = winner.Name
			entry.Sic = winner.Sic
			entry.Year = winner.Year
		}

		leaderboard = append(leaderboard, entry)
	}

	if s.Cache != nil {
		if err := s.Cache.CacheLeaderboard(leaderboard); err != nil {
			config.Warning("Failed to cache leaderboard: %v", err)
		}
	}
	return leaderboard, nil
}

func (s *WinnerService) invalidateCache() {
	if s.Cache != nil {
		s.Cache.InvalidateContestCaches()
	}
}
