package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/digimart/catalog-service/internal/domain"
	"golang.org/x/sync/errgroup"
)

// uploadAll pushes every file to the media API with bounded concurrency.
// Result order matches input order. On any failure the already-uploaded
// files are destroyed so no orphaned media is left behind, and no URLs are
// returned.
func (uc *DefaultCatalogUsecase) uploadAll(ctx context.Context, files []domain.ImageFile) ([]*domain.UploadedImage, error) {
	if len(files) == 0 {
		return nil, nil
	}

	uploaded := make([]*domain.UploadedImage, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			image, err := uc.Media.Upload(gctx, file)
			if err != nil {
				uc.countUpload("failure")
				return fmt.Errorf("failed to upload %s: %w", file.Name, err)
			}
			uc.countUpload("success")
			uploaded[i] = image
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.rollbackUploads(uploaded)
		return nil, err
	}

	return uploaded, nil
}

// rollbackUploads compensates a partially failed batch. It runs on a fresh
// context because the group context is already canceled.
func (uc *DefaultCatalogUsecase) rollbackUploads(uploaded []*domain.UploadedImage) {
	for _, image := range uploaded {
		if image == nil {
			continue
		}
		if err := uc.Media.Delete(context.Background(), image.PublicID); err != nil {
			slog.Error("failed to roll back uploaded image", "public_id", image.PublicID, "error", err.Error())
		}
	}
}

func (uc *DefaultCatalogUsecase) countUpload(status string) {
	if uc.Metrics != nil {
		uc.Metrics.ImageUploadsTotal.WithLabelValues(status).Inc()
	}
}

func imageURLs(uploaded []*domain.UploadedImage) []string {
	urls := make([]string, len(uploaded))
	for i, image := range uploaded {
		urls[i] = image.URL
	}
	return urls
}
