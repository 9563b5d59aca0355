package config

import (
	"Recipe-Book/internal/utils"
	"Recipe-Book/internal/utils/storage"
	"context"
	"fmt"
)

// NewPhotoStore picks the photo backend named by PHOTO_STORAGE.
func NewPhotoStore(ctx context.Context) (storage.PhotoStore, error) {
	switch backend := utils.GetConfig("PHOTO_STORAGE"); backend {
	case "local", "":
		store, err := storage.NewLocalStore(utils.GetConfig("PHOTOS_DIRECTORY"))
		if err != nil {
			return nil, err
		}
		return store, nil
	case "s3":
		store, err := storage.NewAwsS3(ctx, storage.S3Config{
			Bucket:    utils.GetConfig("AWS_S3_BUCKET"),
			Region:    utils.GetConfig("AWS_S3_REGION"),
			AccessKey: utils.GetConfig("AWS_ACCESS_KEY"),
			SecretKey: utils.GetConfig("AWS_SECRET_KEY"),
			Endpoint:  utils.GetConfig("AWS_S3_ENDPOINT"),
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported PHOTO_STORAGE %q", backend)
	}
}
