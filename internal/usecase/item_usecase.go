package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mikiasgoitom/votetally/internal/domain/contract"
	"github.com/mikiasgoitom/votetally/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/votetally/internal/usecase/contract"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ItemUseCaseImpl implements the item catalogue used by the admin panel.
type ItemUseCaseImpl struct {
	itemRepo  contract.IItemRepository
	uuidgen   contract.IUUIDGenerator
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
}

// NewItemUseCase creates a new instance of ItemUseCaseImpl
func NewItemUseCase(itemRepo contract.IItemRepository, uuidgen contract.IUUIDGenerator, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger) *ItemUseCaseImpl {
	return &ItemUseCaseImpl{
		itemRepo:  itemRepo,
		uuidgen:   uuidgen,
		validator: validator,
		logger:    logger,
	}
}

var _ usecasecontract.IItemUseCase = (*ItemUseCaseImpl)(nil)

// CreateItem registers a new votable item with its starting tally.
func (uc *ItemUseCaseImpl) CreateItem(ctx context.Context, title string, initialLikes, initialDislikes int64) (*entity.Item, error) {
	title = strings.TrimSpace(title)
	if err := uc.validator.ValidateTitle(title); err != nil {
		return nil, fmt.Errorf("%w: title: %v", entity.ErrInvalidInput, err)
	}
	if initialLikes < 0 || initialDislikes < 0 {
		return nil, fmt.Errorf("%w: initial counts must not be negative", entity.ErrInvalidInput)
	}

	now := time.Now()
	item := &entity.Item{
		ID:           uc.uuidgen.NewUUID(),
		Title:        title,
		LikeCount:    initialLikes,
		DislikeCount: initialDislikes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.itemRepo.CreateItem(ctx, item); err != nil {
		uc.logger.Errorf("failed to create item %q: %v", title, err)
		return nil, err
	}
	uc.logger.Infof("created item %s", item.ID)
	return item, nil
}

// GetItem returns a single item with its tally.
func (uc *ItemUseCaseImpl) GetItem(ctx context.Context, itemID string) (*entity.Item, error) {
	if err := uc.validator.ValidateID(itemID); err != nil {
		return nil, fmt.Errorf("%w: item id: %v", entity.ErrInvalidInput, err)
	}
	return uc.itemRepo.GetItemByID(ctx, itemID)
}

// ListItems returns a page of items. Out of range paging values fall back to defaults,
// and page is capped so the storage offset never overflows.
func (uc *ItemUseCaseImpl) ListItems(ctx context.Context, page, pageSize int) (*entity.ItemPage, error) {
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	if page < 1 {
		page = 1
	}
	if maxPage := math.MaxInt / pageSize; page > maxPage {
		page = maxPage
	}

	items, total, err := uc.itemRepo.ListItems(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &entity.ItemPage{
		Items:      items,
		Total:      int(total),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}, nil
}
