package usecases_port

import (
	"context"
	"settlements-service/internal/core/domain"

	"github.com/google/uuid"
)

// Админские use case сгруппированы по сущностям: каждая операция —
// полная замена записи, как и везде в системе.

type ManageHousesUseCase interface {
	Create(ctx context.Context, house domain.House) (*domain.House, error)
	Update(ctx context.Context, house domain.House) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ManagePlotsUseCase interface {
	Create(ctx context.Context, plot domain.Plot) (*domain.Plot, error)
	Update(ctx context.Context, plot domain.Plot) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ManageNewsUseCase interface {
	List(ctx context.Context, settlement domain.Settlement) ([]domain.News, error)
	Create(ctx context.Context, news domain.News) (*domain.News, error)
	Update(ctx context.Context, news domain.News) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ManageMediaUseCase interface {
	AddDocument(ctx context.Context, doc domain.Document) (*domain.Document, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
	AddGalleryImage(ctx context.Context, img domain.GalleryImage) (*domain.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id uuid.UUID) error
}

type ManageLeadsUseCase interface {
	List(ctx context.Context, settlement domain.Settlement, kind domain.LeadKind, status domain.RequestStatus) ([]domain.Lead, error)
	UpdateStatus(ctx context.Context, kind domain.LeadKind, id uuid.UUID, status domain.RequestStatus) error
}

type ManageSettingsUseCase interface {
	UpdateSite(ctx context.Context, settings domain.SiteSettings) error
	ListPages(ctx context.Context, settlement domain.Settlement) ([]domain.PageSettings, error)
	UpsertPage(ctx context.Context, page domain.PageSettings) (*domain.PageSettings, error)
}

type ManageUsersUseCase interface {
	List(ctx context.Context) ([]domain.UserWithRoles, error)
	AssignRole(ctx context.Context, userID uuid.UUID, role domain.Role) error
	RemoveRole(ctx context.Context, userID uuid.UUID, role domain.Role) error
}
