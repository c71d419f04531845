package price

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fuelprice-microservice/internal/domain"
	"github.com/fuelprice-microservice/internal/domain/repository"
	"github.com/fuelprice-microservice/internal/worker"
	"go.uber.org/zap"
)

const (
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
)

// PriceUpdateWorker применяет события обновления цен к каталогу станций.
// После успешной записи сбрасывает кеш ранжирования соответствующего
// типа топлива и публикует результат в выходной стрим.
type PriceUpdateWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	stationRepo  repository.StationRepository
	cacheRepo    repository.CacheRepository
	consumerName string
	maxBatchSize int
}

// NewPriceUpdateWorker создает новый PriceUpdateWorker
func NewPriceUpdateWorker(
	streamRepo repository.StreamRepository,
	stationRepo repository.StationRepository,
	cacheRepo repository.CacheRepository,
	consumerGroup string,
	maxBatchSize int,
	logger *zap.Logger,
) *PriceUpdateWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	if maxBatchSize <= 0 {
		maxBatchSize = 20
	}

	return &PriceUpdateWorker{
		BaseWorker:   worker.NewBaseWorker("price-update", consumerGroup, logger),
		streamRepo:   streamRepo,
		stationRepo:  stationRepo,
		cacheRepo:    cacheRepo,
		consumerName: consumerName,
		maxBatchSize: maxBatchSize,
	}
}

// Start запускает воркер
func (w *PriceUpdateWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting PriceUpdateWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", w.maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPriceUpdate, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.ProcessBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// ProcessBatch читает и применяет пачку событий.
// Возвращает количество прочитанных сообщений.
func (w *PriceUpdateWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamPriceUpdate,
		w.ConsumerGroup(),
		w.consumerName,
		int64(w.maxBatchSize),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		w.processMessage(ctx, msg)
	}

	return len(messages), nil
}

// processMessage применяет одно событие. Сообщение подтверждается в
// любом исходе: битые и отклонённые события не должны застревать в
// pending-списке consumer group.
func (w *PriceUpdateWorker) processMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.PriceUpdateEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse message, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	if err := event.Validate(); err != nil {
		logger.Warn("Rejecting invalid price event",
			zap.String("message_id", msg.ID),
			zap.String("station_id", event.StationID.String()),
			zap.Error(err))
		w.publishApplied(ctx, domain.PriceAppliedEvent{
			EventID:   event.EventID,
			StationID: event.StationID,
			FuelType:  event.FuelType,
			Error:     err.Error(),
		})
		w.ack(ctx, msg.ID)
		return
	}

	oldPrice, err := w.stationRepo.UpsertPrice(ctx, event.StationID, event.FuelType, event.Price)
	if err != nil {
		logger.Error("Failed to apply price update",
			zap.String("message_id", msg.ID),
			zap.String("station_id", event.StationID.String()),
			zap.Error(err))
		w.publishApplied(ctx, domain.PriceAppliedEvent{
			EventID:   event.EventID,
			StationID: event.StationID,
			FuelType:  event.FuelType,
			Error:     err.Error(),
		})
		w.ack(ctx, msg.ID)
		return
	}

	// Цена изменилась - кешированное ранжирование устарело
	if err := w.cacheRepo.DeleteRanking(ctx, event.FuelType); err != nil {
		logger.Warn("Failed to invalidate ranking cache",
			zap.String("fuel_type", string(event.FuelType)),
			zap.Error(err))
	}

	w.publishApplied(ctx, domain.PriceAppliedEvent{
		EventID:   event.EventID,
		StationID: event.StationID,
		FuelType:  event.FuelType,
		OldPrice:  oldPrice,
		NewPrice:  event.Price,
	})
	w.ack(ctx, msg.ID)

	logger.Debug("Price update applied",
		zap.String("station_id", event.StationID.String()),
		zap.String("fuel_type", string(event.FuelType)),
		zap.Float64("new_price", event.Price))
}

func (w *PriceUpdateWorker) publishApplied(ctx context.Context, event domain.PriceAppliedEvent) {
	if err := w.streamRepo.PublishApplied(ctx, event); err != nil {
		w.Logger().Warn("Failed to publish applied event",
			zap.String("station_id", event.StationID.String()),
			zap.Error(err))
	}
}

func (w *PriceUpdateWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.Ack(ctx, domain.StreamPriceUpdate, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Warn("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
