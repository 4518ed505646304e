package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cb17225/huffman-compression/internal/config"
	"github.com/cb17225/huffman-compression/internal/handler"
	"github.com/cb17225/huffman-compression/internal/repo"
	"github.com/cb17225/huffman-compression/internal/router"
	"github.com/cb17225/huffman-compression/internal/service"
	"github.com/cb17225/huffman-compression/pkg/logger"
)

func main() {
	// 설정/로거 초기화
	cfg := config.Load()
	logg := logger.New("server", cfg.Debug)

	// 저장소: DATABASE_URL 이 있으면 PostgreSQL, 없으면 인메모리
	weightRepo := repo.NewWeightRepoInMemory()
	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		pool, err := repo.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		if err := repo.Migrate(ctx, pool); err != nil {
			log.Fatal(err)
		}
		weightRepo = repo.NewWeightRepoPostgres(pool)
		logg.Infof("using postgres profile store")
	}

	// 의존성 생성
	codecSvc := service.NewCodecService(weightRepo, logg, cfg.Minimize)
	codecH := handler.NewCodecHandler(codecSvc)

	// Gin 라우터 생성 및 라우팅 구성
	r := gin.Default()
	router.Register(r, router.Dependencies{
		CodecHandler: codecH,
	})

	addr := ":" + cfg.Port
	log.Printf("starting server at %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
