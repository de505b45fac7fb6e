package service

import (
	"context"
	"log"
	"time"

	"V_Arcade/internal/model"
	"V_Arcade/internal/pkg"
	"V_Arcade/internal/repository/mysql"

	"gorm.io/gorm"
)

// Sender 出箱事件投递端
type Sender interface {
	Send(ctx context.Context, key string, value []byte) error
}

// LogSender 没配 Kafka 时的兜底投递端，只打日志
type LogSender struct{}

func (LogSender) Send(ctx context.Context, key string, value []byte) error {
	log.Printf("social event %s: %s", key, value)
	return nil
}

// KafkaSender 把出箱事件投到 Kafka
type KafkaSender struct {
	Producer *pkg.KafkaProducer
}

func (s KafkaSender) Send(ctx context.Context, key string, value []byte) error {
	return s.Producer.Send(ctx, key, value)
}

// OutboxRelayer 定时扫描 social_outbox，把待发事件逐条投递
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	sender    Sender
	interval  time.Duration
	batchSize int
}

func NewOutboxRelayer(db *gorm.DB, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		sender:    sender,
		interval:  3 * time.Second,
		batchSize: 100,
	}
}

// Run 阻塞运行直到 ctx 取消，通常放在独立 goroutine 里
func (r *OutboxRelayer) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.DrainOnce(ctx); err != nil {
				log.Printf("outbox drain: %v", err)
			}
		}
	}
}

// DrainOnce 投递一批待发事件，单条失败只标记重试不中断
func (r *OutboxRelayer) DrainOnce(ctx context.Context) error {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		return err
	}
	for i := range rows {
		if err := r.deliver(ctx, &rows[i]); err != nil {
			log.Printf("outbox event %d (%s): %v", rows[i].ID, rows[i].EventType, err)
			if uerr := r.repo.RetryUpdate(ctx, rows[i].ID); uerr != nil {
				return uerr
			}
			continue
		}
		if uerr := r.repo.SuccessUpdate(ctx, rows[i].ID); uerr != nil {
			return uerr
		}
	}
	return nil
}

func (r *OutboxRelayer) deliver(ctx context.Context, row *model.SocialOutbox) error {
	return r.sender.Send(ctx, pkg.MakeKeyFromID(row.ActorID), []byte(row.Payload))
}
