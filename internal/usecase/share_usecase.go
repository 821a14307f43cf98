package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eliperez-dev/UntilEveryCage/internal/domain/repository"
	"github.com/eliperez-dev/UntilEveryCage/internal/pkg/errors"
	"github.com/eliperez-dev/UntilEveryCage/internal/usecase/dto"
)

const shareKeyPrefix = "share:"

// ShareUseCase mints short-lived tokens for view-state snapshots, so a
// share link stays short no matter how long the query string gets.
type ShareUseCase struct {
	cacheRepo repository.CacheRepository
	ttl       time.Duration
	logger    *zap.Logger
}

// NewShareUseCase creates a new ShareUseCase instance.
func NewShareUseCase(cacheRepo repository.CacheRepository, ttl time.Duration, logger *zap.Logger) *ShareUseCase {
	return &ShareUseCase{
		cacheRepo: cacheRepo,
		ttl:       ttl,
		logger:    logger,
	}
}

// Create stores the snapshot under a fresh token.
func (uc *ShareUseCase) Create(ctx context.Context, req dto.ShareRequest) (dto.ShareResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return dto.ShareResponse{}, fmt.Errorf("marshal share snapshot: %w", err)
	}

	token := uuid.NewString()
	if err := uc.cacheRepo.Set(ctx, shareKeyPrefix+token, payload, uc.ttl); err != nil {
		uc.logger.Error("Failed to store share snapshot", zap.Error(err))
		return dto.ShareResponse{}, errors.ErrCacheError
	}

	return dto.ShareResponse{
		Token: token,
		Path:  "/s/" + token,
	}, nil
}

// Resolve returns the snapshot for a token, or ErrShareNotFound once it
// has expired.
func (uc *ShareUseCase) Resolve(ctx context.Context, token string) (dto.ShareRequest, error) {
	if _, err := uuid.Parse(token); err != nil {
		return dto.ShareRequest{}, errors.ErrShareNotFound
	}

	payload, err := uc.cacheRepo.Get(ctx, shareKeyPrefix+token)
	if err != nil {
		return dto.ShareRequest{}, errors.ErrShareNotFound
	}

	var req dto.ShareRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		uc.logger.Warn("Corrupt share snapshot", zap.String("token", token), zap.Error(err))
		return dto.ShareRequest{}, errors.ErrShareNotFound
	}
	return req, nil
}
