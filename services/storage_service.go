package services

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	// 注册常见图片格式的解码器
	_ "image/gif"
	_ "image/png"

	"zreyas-photo-service/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

// 图片优化参数: 最大宽度2000px, JPEG质量60
const (
	maxImageWidth = 2000
	jpegQuality   = 60
)

// StorageResult 上传成功后返回的公开URL和用于删除的存储键
type StorageResult struct {
	URL string
	Key string
}

// InterfaceStorageService 定义照片资产存储接口
// 实现方负责图片的持久化与删除; 删除失败由调用方记录日志后忽略
type InterfaceStorageService interface {
	Upload(localPath, participantUniqueString string) (*StorageResult, error)
	Delete(key string) error
}

// NewStorageService 根据配置选择存储实现
func NewStorageService(cfg *config.Config) InterfaceStorageService {
	if cfg.StorageDriver == "s3" {
		return NewS3StorageService(cfg)
	}
	return NewLocalStorageService(cfg)
}

// optimizeImage 解码图片, 压缩到最大宽度并重编码为JPEG
func optimizeImage(localPath string) ([]byte, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// 只缩小, 不放大
	if img.Bounds().Dx() > maxImageWidth {
		img = resize.Resize(maxImageWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// storageKey 生成带参与者目录结构的存储键
func storageKey(participantUniqueString string) string {
	return fmt.Sprintf("photo-contest/%s/%s.jpg", participantUniqueString, uuid.New().String())
}

// S3StorageService 将照片存储到AWS S3
type S3StorageService struct {
	uploader *s3manager.Uploader
	client   *s3.S3
	bucket   string
}

// NewS3StorageService 创建S3存储服务
func NewS3StorageService(cfg *config.Config) *S3StorageService {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:      aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
	}))

	return &S3StorageService{
		uploader: s3manager.NewUploader(sess),
		client:   s3.New(sess),
		bucket:   cfg.AWSBucketName,
	}
}

// Upload 优化图片后上传到S3, 返回公开URL和对象键
func (s *S3StorageService) Upload(localPath, participantUniqueString string) (*StorageResult, error) {
	optimized, err := optimizeImage(localPath)
	if err != nil {
		return nil, err
	}

	key := storageKey(participantUniqueString)
	result, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(optimized),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return nil, err
	}

	return &StorageResult{URL: result.Location, Key: key}, nil
}

// Delete 删除S3上的对象
func (s *S3StorageService) Delete(key string) error {
	_, err := s.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// LocalStorageService 将照片存储到本地磁盘, 经由 /uploads 静态路由对外提供
type LocalStorageService struct {
	baseDir string
}

// NewLocalStorageService 创建本地磁盘存储服务
func NewLocalStorageService(cfg *config.Config) *LocalStorageService {
	return &LocalStorageService{baseDir: cfg.UploadDir}
}

// Upload 优化图片后写入本地上传目录
func (s *LocalStorageService) Upload(localPath, participantUniqueString string) (*StorageResult, error) {
	optimized, err := optimizeImage(localPath)
	if err != nil {
		return nil, err
	}

	key := storageKey(participantUniqueString)
	destPath := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(destPath, optimized, 0644); err != nil {
		return nil, err
	}

	return &StorageResult{URL: "/uploads/" + key, Key: key}, nil
}

// Delete 删除本地磁盘上的文件
func (s *LocalStorageService) Delete(key string) error {
	// 拒绝越出上传目录的键
	if strings.Contains(key, "..") {
		return fmt.Errorf("invalid storage key: %s", key)
	}
	return os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(key)))
}
