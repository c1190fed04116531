package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/MarinCervinschi/TriviaMore-sub000/internal/config"
	"github.com/MarinCervinschi/TriviaMore-sub000/internal/token"
)

const (
	InvalidationBatchSize    = 50
	InvalidationBatchTimeout = 2 * time.Second
	InvalidationPollTimeout  = 1 * time.Second
)

// InvalidationWorker drains the section invalidation queue and drops the
// cached question pools of the named sections. Content editors push a
// section id whenever its questions change; pools otherwise age out on TTL.
type InvalidationWorker struct {
	rdb *redis.Client
	log zerolog.Logger
}

func NewInvalidationWorker(rdb *redis.Client, log zerolog.Logger) *InvalidationWorker {
	return &InvalidationWorker{
		rdb: rdb,
		log: log.With().Str("component", "invalidation_worker").Logger(),
	}
}

type invalidationPayload struct {
	SectionID string `json:"section_id"`
}

func (w *InvalidationWorker) Start(ctx context.Context) {
	w.log.Info().Msg("InvalidationWorker started")

	batch := make([]*invalidationPayload, 0, InvalidationBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= InvalidationBatchSize || time.Since(lastFlush) >= InvalidationBatchTimeout) {

			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Flushing remaining batch...")
			w.flushSafe(context.Background(), batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, InvalidationPollTimeout, config.WorkerKey.InvalidateSectionsQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var p invalidationPayload
			if err := json.Unmarshal([]byte(item[1]), &p); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}

			batch = append(batch, &p)
		}
	}
}

func (w *InvalidationWorker) flushSafe(ctx context.Context, batch []*invalidationPayload) {
	if len(batch) == 0 {
		return
	}

	if err := w.dropPools(ctx, batch); err != nil {
		w.log.Warn().Err(err).Msg("batched pool invalidation failed, requeueing")

		for _, p := range batch {
			raw, _ := json.Marshal(p)
			w.rdb.RPush(ctx, config.WorkerKey.InvalidateSectionsQueue, raw)
		}
	}
}

// dropPools deletes both subject pools of every section in the batch with a
// single pipeline round trip.
func (w *InvalidationWorker) dropPools(ctx context.Context, batch []*invalidationPayload) error {
	keys := make([]string, 0, len(batch)*2)
	for _, p := range batch {
		keys = append(keys,
			config.CacheKey.SectionPoolKey(p.SectionID, string(token.SubjectQuiz)),
			config.CacheKey.SectionPoolKey(p.SectionID, string(token.SubjectFlashcard)),
		)
	}

	if err := w.rdb.Del(ctx, keys...).Err(); err != nil {
		return err
	}

	w.log.Debug().Int("sections", len(batch)).Msg("section pools invalidated")
	return nil
}
