package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/photoglow/photoglow-backend/internal/models"
	"github.com/photoglow/photoglow-backend/pkg/apperror"
	"github.com/photoglow/photoglow-backend/pkg/storage"
	"github.com/photoglow/photoglow-backend/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Listelemede dönen maksimum fotoğraf sayısı.
const maxPhotoList = 50

type PhotoService struct {
	photos  PhotoStore
	storage storage.ObjectStorage
	logger  *zap.Logger
}

func NewPhotoService(photos PhotoStore, objectStorage storage.ObjectStorage, logger *zap.Logger) *PhotoService {
	return &PhotoService{
		photos:  photos,
		storage: objectStorage,
		logger:  logger,
	}
}

// GetUserPhotos sahibin fotoğraflarını yeniden eskiye sıralı döner. Sıralı
// sorgu çalışmazsa (örn. index henüz hazır değil) sırasız sorguya düşer ve
// sıralamayı bellekte yapar — iki yol da aynı sıralamayı üretir.
func (s *PhotoService) GetUserPhotos(callerID, userID string) (*models.PhotoListResponse, error) {
	if userID == "" {
		return nil, apperror.InvalidArgument("User ID is required")
	}
	if userID != callerID {
		return nil, apperror.PermissionDenied("You can only list your own photos")
	}

	photos, err := s.photos.ListByUserOrdered(userID, maxPhotoList)
	if err != nil {
		s.logger.Warn("ordered photo query failed, falling back to in-memory sort",
			zap.String("user_id", userID), zap.Error(err))

		photos, err = s.photos.ListByUser(userID)
		if err != nil {
			s.logger.Error("photo query failed",
				zap.String("user_id", userID), zap.Error(err))
			return nil, apperror.Internal("Failed to list photos")
		}

		sort.Slice(photos, func(i, j int) bool {
			return photos[i].CreatedAt.After(photos[j].CreatedAt)
		})
		if len(photos) > maxPhotoList {
			photos = photos[:maxPhotoList]
		}
	}

	return &models.PhotoListResponse{
		Photos: photos,
		Total:  len(photos),
	}, nil
}

// DeletePhoto sahiplik kontrolünden sonra 0-2 storage objesini eşzamanlı ve
// best-effort siler: tüm sonuçlar beklenir, başarısızlıklar loglanıp yutulur
// ve kaydın silinmesini asla engellemez.
func (s *PhotoService) DeletePhoto(ctx context.Context, callerID, photoID string) error {
	if photoID == "" {
		return apperror.InvalidArgument("Photo ID is required")
	}

	photo, err := s.photos.GetByID(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("Photo not found")
		}
		s.logger.Error("failed to load photo", zap.String("photo_id", photoID), zap.Error(err))
		return apperror.Internal("Failed to load photo")
	}

	if photo.UserID != callerID {
		return apperror.PermissionDenied("You can only delete your own photos")
	}

	keys := s.storageKeys(photo)

	var wg sync.WaitGroup
	for _, key := range keys {
		wg.Add(1)
		go func(k string) {
			defer wg.Done()
			if err := s.storage.Delete(ctx, k); err != nil {
				s.logger.Warn("storage cleanup failed",
					zap.String("photo_id", photo.ID),
					zap.String("key", k),
					zap.Error(err),
				)
			}
		}(key)
	}
	wg.Wait()

	if err := s.photos.Delete(photoID); err != nil {
		s.logger.Error("failed to delete photo record",
			zap.String("photo_id", photoID), zap.Error(err))
		return apperror.Internal("Failed to delete photo")
	}

	return nil
}

// storageKeys fotoğrafın URL'lerinden silinecek storage key'lerini çıkarır.
// Çözülemeyen URL loglanır ve atlanır.
func (s *PhotoService) storageKeys(photo *models.Photo) []string {
	var keys []string

	if key, ok := storage.ObjectKeyFromURL(photo.OriginalURL); ok {
		keys = append(keys, key)
	} else if photo.OriginalURL != "" {
		s.logger.Warn("no storage path found in original url",
			zap.String("photo_id", photo.ID))
	}

	if photo.ResultURL != "" && photo.ResultURL != photo.OriginalURL {
		if key, ok := storage.ObjectKeyFromURL(photo.ResultURL); ok {
			keys = append(keys, key)
		} else {
			s.logger.Warn("no storage path found in result url",
				zap.String("photo_id", photo.ID))
		}
	}

	return keys
}

// UploadPhoto orijinal görseli storage'a yükler ve processing durumunda bir
// kayıt açar.
func (s *PhotoService) UploadPhoto(ctx context.Context, userID string, file *multipart.FileHeader, theme string) (*models.Photo, error) {
	if !utils.IsSupportedImageType(file.Header.Get("Content-Type")) {
		return nil, apperror.InvalidArgument("Invalid file type")
	}

	// 10MB limit
	if file.Size > 10*1024*1024 {
		return nil, apperror.InvalidArgument("File size too large")
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperror.Internal("Failed to open uploaded file")
	}
	defer src.Close()

	photoID := uuid.NewString()
	key := fmt.Sprintf("users/%s/original/%s", userID, photoID)

	if err := s.storage.Upload(ctx, key, src); err != nil {
		s.logger.Error("photo upload failed",
			zap.String("user_id", userID), zap.Error(err))
		return nil, apperror.Internal("Failed to upload photo")
	}

	photo := &models.Photo{
		ID:          photoID,
		UserID:      userID,
		OriginalURL: s.storage.PublicURL(key),
		Status:      models.PhotoStatusProcessing,
		Theme:       theme,
	}

	if err := s.photos.Create(photo); err != nil {
		// Cleanup
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Warn("cleanup after failed create",
				zap.String("key", key), zap.Error(delErr))
		}
		return nil, apperror.Internal("Failed to save photo record")
	}

	return photo, nil
}
