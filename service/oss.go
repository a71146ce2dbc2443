package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"Woorigil/config"
	"Woorigil/dao"
	"Woorigil/models"
	"Woorigil/pkg/response"
	"Woorigil/pkg/snowflake"
	"Woorigil/pkg/utils"
	"Woorigil/types"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"gorm.io/gorm"
)

const maxImageSize int64 = 10 << 20 // 10MB

var allowedImageFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	UploadImage(ctx context.Context, userID *int64, purpose string, header *multipart.FileHeader) (*types.UploadImageResp, error)
	GetImage(ctx context.Context, publicID string) (*types.ImageResp, error)
	DeleteImage(ctx context.Context, userID int64, publicID string) error

	// UploadObject stores a raw object (diary thumbnails) and returns its key.
	UploadObject(ctx context.Context, keyPrefix string, header *multipart.FileHeader) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
	PublicURL(objectKey string) string
}

type OssService struct {
	Client   *oss.Client
	Config   *config.OssConfig
	Salt     string
	ImageDao *dao.Images
}

func NewOssService(client *oss.Client, cfg *config.Config, imageDao *dao.Images) IOssService {
	return &OssService{
		Client:   client,
		Config:   cfg.Oss,
		Salt:     cfg.App.HashSalt,
		ImageDao: imageDao,
	}
}

// UploadImage validates, stores and records an uploaded image. Anonymous
// uploads pass a nil userID. The declared size is checked first but the real
// limit is enforced on the read.
func (s *OssService) UploadImage(ctx context.Context, userID *int64, purpose string, header *multipart.FileHeader) (*types.UploadImageResp, error) {
	if header == nil {
		return nil, response.BadRequest("Validation failed", "image file is required")
	}
	if header.Size <= 0 || header.Size > maxImageSize {
		return nil, response.BadRequest("Validation failed", "image must be between 1 byte and 10MB")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return nil, errors.New("uploaded file is not seekable")
	}

	contentType, err := sniffImageType(seeker)
	if err != nil {
		return nil, err
	}

	cfg, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return nil, response.BadRequest("Validation failed", "file is not a decodable image")
	}
	format = strings.ToLower(format)
	if !allowedImageFormats[format] {
		return nil, response.BadRequest("Validation failed", "unsupported image format: "+format)
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	imageID := snowflake.GenID()
	objectKey := fmt.Sprintf("images/%s/%d.%s", time.Now().Format("2006/01/02"), imageID, formatExt(format))

	limited := io.LimitReader(seeker, maxImageSize+1)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.Config.Bucket),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return nil, err
	}

	img := models.Image{
		ID:          imageID,
		UserID:      userID,
		PublicID:    utils.GenHashID(s.Salt, imageID),
		Purpose:     purpose,
		OssKey:      objectKey,
		ContentType: contentType,
		Width:       cfg.Width,
		Height:      cfg.Height,
		ByteSize:    header.Size,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.ImageDao.CreateImage(ctx, &img); err != nil {
		return nil, err
	}

	return &types.UploadImageResp{
		ImageID: img.PublicID,
		URL:     s.PublicURL(objectKey),
		Width:   cfg.Width,
		Height:  cfg.Height,
	}, nil
}

func (s *OssService) GetImage(ctx context.Context, publicID string) (*types.ImageResp, error) {
	img, err := s.findByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return &types.ImageResp{
		ImageID:     img.PublicID,
		URL:         s.PublicURL(img.OssKey),
		ContentType: img.ContentType,
		Width:       img.Width,
		Height:      img.Height,
		ByteSize:    img.ByteSize,
	}, nil
}

// DeleteImage removes the object and the record. Only the owner may delete
// an owned image; ownerless images are deletable by anyone authenticated.
func (s *OssService) DeleteImage(ctx context.Context, userID int64, publicID string) error {
	img, err := s.findByPublicID(ctx, publicID)
	if err != nil {
		return err
	}
	if img.UserID != nil && *img.UserID != userID {
		return response.NotFound("Image not found")
	}

	if err := s.DeleteObject(ctx, img.OssKey); err != nil {
		return err
	}
	return s.ImageDao.DeleteByID(ctx, img.ID)
}

func (s *OssService) UploadObject(ctx context.Context, keyPrefix string, header *multipart.FileHeader) (string, error) {
	if header == nil {
		return "", response.BadRequest("Validation failed", "file is required")
	}
	if header.Size <= 0 || header.Size > maxImageSize {
		return "", response.BadRequest("Validation failed", "file must be between 1 byte and 10MB")
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	objectKey := fmt.Sprintf("%s/%s/%d", keyPrefix, time.Now().Format("2006/01/02"), snowflake.GenID())
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.Config.Bucket),
		Key:    oss.Ptr(objectKey),
		Body:   io.LimitReader(f, maxImageSize+1),
	}); err != nil {
		return "", err
	}
	return objectKey, nil
}

func (s *OssService) DeleteObject(ctx context.Context, objectKey string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.Config.Bucket),
		Key:    oss.Ptr(objectKey),
	})
	return err
}

func (s *OssService) PublicURL(objectKey string) string {
	return strings.TrimSuffix(s.Config.PublicBaseURL, "/") + "/" + objectKey
}

func (s *OssService) findByPublicID(ctx context.Context, publicID string) (*models.Image, error) {
	if utils.ParseHashID(s.Salt, publicID) == 0 {
		return nil, response.NotFound("Image not found")
	}
	img, err := s.ImageDao.FindByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("Image not found")
		}
		return nil, err
	}
	return img, nil
}

// sniffImageType checks the magic bytes before any decode work and rewinds.
func sniffImageType(seeker io.ReadSeeker) (string, error) {
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])

	allowed := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
	if !allowed[contentType] {
		return "", response.BadRequest("Validation failed", "unsupported content type: "+contentType)
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return contentType, nil
}

func formatExt(format string) string {
	if format == "jpeg" {
		return "jpg"
	}
	return format
}
