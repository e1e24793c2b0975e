package usecase

import (
	"context"
	"strings"
	"time"

	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"

	"github.com/google/uuid"
)

type ManageMediaUseCase struct {
	storage port.MediaStoragePort
}

func NewManageMediaUseCase(storage port.MediaStoragePort) *ManageMediaUseCase {
	return &ManageMediaUseCase{storage: storage}
}

func (uc *ManageMediaUseCase) AddDocument(ctx context.Context, doc domain.Document) (*domain.Document, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ManageMedia.AddDocument",
		"settlement": doc.Settlement,
	})

	if !doc.Settlement.Valid() {
		return nil, domain.NewValidationError("settlement", "unknown settlement: "+string(doc.Settlement))
	}
	if strings.TrimSpace(doc.Title) == "" {
		return nil, domain.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(doc.FileURL) == "" {
		return nil, domain.NewValidationError("fileUrl", "file url is required")
	}

	doc.ID = uuid.New()
	doc.CreatedAt = time.Now().UTC()

	if err := uc.storage.AddDocument(ctx, &doc); err != nil {
		ucLogger.Error("Failed to add document", err, nil)
		return nil, err
	}

	ucLogger.Info("Document added", port.Fields{"document_id": doc.ID.String()})
	return &doc, nil
}

func (uc *ManageMediaUseCase) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	if err := uc.storage.DeleteDocument(ctx, id); err != nil {
		logger.Error("Failed to delete document", err, port.Fields{"document_id": id.String()})
		return err
	}
	return nil
}

func (uc *ManageMediaUseCase) AddGalleryImage(ctx context.Context, img domain.GalleryImage) (*domain.GalleryImage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ManageMedia.AddGalleryImage",
		"settlement": img.Settlement,
	})

	if !img.Settlement.Valid() {
		return nil, domain.NewValidationError("settlement", "unknown settlement: "+string(img.Settlement))
	}
	if strings.TrimSpace(img.ImageURL) == "" {
		return nil, domain.NewValidationError("imageUrl", "image url is required")
	}

	img.ID = uuid.New()
	img.CreatedAt = time.Now().UTC()

	if err := uc.storage.AddGalleryImage(ctx, &img); err != nil {
		ucLogger.Error("Failed to add gallery image", err, nil)
		return nil, err
	}

	ucLogger.Info("Gallery image added", port.Fields{"image_id": img.ID.String()})
	return &img, nil
}

func (uc *ManageMediaUseCase) DeleteGalleryImage(ctx context.Context, id uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	if err := uc.storage.DeleteGalleryImage(ctx, id); err != nil {
		logger.Error("Failed to delete gallery image", err, port.Fields{"image_id": id.String()})
		return err
	}
	return nil
}
