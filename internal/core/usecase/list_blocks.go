package usecase

import (
	"context"
	"settlements-service/internal/contextkeys"
	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port"
)

type ListBlocksUseCase struct {
	repo port.BlockRepositoryPort
}

func NewListBlocksUseCase(repo port.BlockRepositoryPort) *ListBlocksUseCase {
	return &ListBlocksUseCase{repo: repo}
}

// Execute возвращает все блоки поселка в порядке рендеринга. Публичная
// страница дополнительно фильтрует список через domain.EnabledOnly —
// отдельного запроса для рендера нет.
func (uc *ListBlocksUseCase) Execute(ctx context.Context, settlement domain.Settlement) ([]domain.HomepageBlock, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ListBlocks",
		"settlement": settlement,
	})

	blocks, err := uc.repo.ListBySettlement(ctx, settlement)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Debug("Blocks listed", port.Fields{"count": len(blocks)})
	return blocks, nil
}
