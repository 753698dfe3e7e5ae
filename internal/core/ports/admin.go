package ports

import (
	"context"

	"github.com/lexluc/lexluc-platform/internal/core/domain/admin"
)

type StatsService interface {
	GetStats(ctx context.Context) (*admin.Stats, error)
}
