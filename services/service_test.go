package services

import (
	"path/filepath"
	"testing"

	"zreyas-photo-service/config"
	"zreyas-photo-service/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 为单个测试创建一次性的sqlite数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "contest_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Admin{},
		&models.Participant{},
		&models.Photo{},
		&models.Winner{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func getTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		ServerPort:         "8080",
		JWTSecretKey:       "test-secret-key",
		StorageDriver:      "local",
		UploadDir:          t.TempDir(),
		SuperAdminPassword: "superadmin123",
	}
}

// seedAdmin 通过服务层创建管理员, 密码为 "password123"
func seedAdmin(t *testing.T, db *gorm.DB, cfg *config.Config, username, role string) *models.Admin {
	t.Helper()

	admin, err := NewAdminService(db, cfg).CreateAdmin(username, "password123", role)
	if err != nil {
		t.Fatalf("Failed to seed admin %s: %v", username, err)
	}
	return admin
}

// seedPhoto 直接插入一条属于指定参与者的照片记录
func seedPhoto(t *testing.T, db *gorm.DB, owner string) *models.Photo {
	t.Helper()

	photo := &models.Photo{
		ParticipantUniqueString: owner,
		Path:                    "/uploads/photo-contest/" + owner + "/entry.jpg",
		StorageKey:              "photo-contest/" + owner + "/entry.jpg",
		Caption:                 "test entry",
	}
	if err := db.Create(photo).Error; err != nil {
		t.Fatalf("Failed to seed photo: %v", err)
	}
	return photo
}
