package main

import (
	"context"
	"flag"
	"log"

	"V_Arcade/internal/config"
	"V_Arcade/internal/model"
	"V_Arcade/internal/pkg"
	"V_Arcade/internal/repository/mysql"
	"V_Arcade/internal/repository/redis"
	"V_Arcade/internal/router"
	"V_Arcade/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := mysql.InitDB(cfg.Database.DSN); err != nil {
		log.Fatalf("connect mysql: %v", err)
	}

	// 连接redis，失败只降级不退出（单点登录和未读数缓存关闭）
	if err := redis.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Printf("redis unavailable, session pinning disabled: %v", err)
	}

	pkg.InitJWT(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret)

	// 自动建表（开发阶段 OK）
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Game{},
		&model.UserGame{},
		&model.CustomArt{},
		&model.ArtLike{},
		&model.Comment{},
		&model.Follow{},
		&model.Conversation{},
		&model.Message{},
		&model.Notification{},
		&model.Activity{},
		&model.GameCollection{},
		&model.CollectionGame{},
		&model.SocialOutbox{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// 社交事件出箱投递，没配 Kafka 就打日志
	var sender service.Sender = service.LogSender{}
	if len(cfg.Kafka.Brokers) > 0 {
		producer, perr := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if perr != nil {
			log.Fatalf("kafka producer: %v", perr)
		}
		defer producer.Close()
		sender = service.KafkaSender{Producer: producer}
	}
	relayer := service.NewOutboxRelayer(mysql.DB, sender)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go relayer.Run(ctx)

	r := router.InitRouter(mysql.DB, cfg)
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("server: %v", err)
	}
}
