package repository

import (
	"context"
	"io"
	"strings"

	"github.com/arkanadhi/lokapasar/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

const imageURLPrefix = "/api/v1/products/images/"

// ImageRepositoryImpl stores product images in a GridFS bucket and hands out
// URLs served by the product controller's image route.
type ImageRepositoryImpl struct {
	bucket *gridfs.Bucket
}

func CreateImageRepository(db *mongo.Database) (ImageRepository, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, err
	}

	return &ImageRepositoryImpl{bucket: bucket}, nil
}

func (r *ImageRepositoryImpl) UploadImage(ctx context.Context, filename string, source io.Reader) (url string, err error) {
	if deadline, ok := ctx.Deadline(); ok {
		r.bucket.SetWriteDeadline(deadline)
	}

	fileID, err := r.bucket.UploadFromStream(filename, source)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UploadImage").Msg("")
		return
	}

	return imageURLPrefix + fileID.Hex(), nil
}

func (r *ImageRepositoryImpl) DownloadImage(ctx context.Context, id string, target io.Writer) (err error) {
	fileID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrNotFound
	}

	if deadline, ok := ctx.Deadline(); ok {
		r.bucket.SetReadDeadline(deadline)
	}

	_, err = r.bucket.DownloadToStream(fileID, target)
	if err != nil {
		if err == gridfs.ErrFileNotFound {
			return errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "DownloadImage").Msg("")
		return err
	}

	return nil
}

func (r *ImageRepositoryImpl) DeleteImage(ctx context.Context, url string) (err error) {
	if !strings.HasPrefix(url, imageURLPrefix) {
		return errs.ErrNotFound
	}

	fileID, err := primitive.ObjectIDFromHex(strings.TrimPrefix(url, imageURLPrefix))
	if err != nil {
		return errs.ErrNotFound
	}

	if deadline, ok := ctx.Deadline(); ok {
		r.bucket.SetWriteDeadline(deadline)
	}

	err = r.bucket.Delete(fileID)
	if err != nil {
		if err == gridfs.ErrFileNotFound {
			return errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteImage").Msg("")
		return err
	}

	return nil
}
