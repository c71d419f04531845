package repository

import (
	"context"

	"github.com/fuelprice-microservice/internal/domain"
)

// StreamRepository - интерфейс для работы с Redis Streams
type StreamRepository interface {
	// CreateConsumerGroup создаёт consumer group
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch читает пачку сообщений из стрима
	ConsumeBatch(ctx context.Context, stream, group, consumer string, count int64) ([]domain.StreamMessage, error)

	// Ack подтверждает обработку сообщения
	Ack(ctx context.Context, stream, group, messageID string) error

	// PublishUpdate публикует событие обновления цены
	PublishUpdate(ctx context.Context, event domain.PriceUpdateEvent) error

	// PublishApplied публикует результат применения обновления
	PublishApplied(ctx context.Context, event domain.PriceAppliedEvent) error
}
