package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/visual-search/internal/cfg"
	v1Grpc "github.com/DRSN-tech/visual-search/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/visual-search/internal/delivery/v1/http"
	"github.com/DRSN-tech/visual-search/internal/index"
	"github.com/DRSN-tech/visual-search/internal/infrastructure/embedder"
	"github.com/DRSN-tech/visual-search/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/visual-search/internal/infrastructure/minio"
	"github.com/DRSN-tech/visual-search/internal/preprocess"
	"github.com/DRSN-tech/visual-search/internal/proto"
	"github.com/DRSN-tech/visual-search/internal/rank"
	s3Repo "github.com/DRSN-tech/visual-search/internal/repository/minio"
	"github.com/DRSN-tech/visual-search/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/visual-search/internal/repository/pgdb/converter/generated"
	qdrantRepo "github.com/DRSN-tech/visual-search/internal/repository/qdrant"
	"github.com/DRSN-tech/visual-search/internal/repository/redis"
	redisConv "github.com/DRSN-tech/visual-search/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/clients"
	"github.com/DRSN-tech/visual-search/pkg/closer"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/DRSN-tech/visual-search/pkg/logger"
	"github.com/DRSN-tech/visual-search/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	resources := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}
	resources.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	catConv := pgdbConv.NewCategoryConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	outboxConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	catalogSource := s3Repo.NewCatalogSourceRepo(minioClient, cfg.Minio)
	snapshotRepo := s3Repo.NewSnapshotRepo(minioClient, cfg.Index, cfg.Minio.BucketName)

	qdrantClient, err := clients.NewQdrantClient(cfg.Qdrant)
	if err != nil {
		logger.Errorf(err, "failed to initialize qdrant")
		os.Exit(1)
	}
	qdrantCtx, qdrantCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureCollection(qdrantCtx, qdrantClient); err != nil {
		qdrantCancel()
		logger.Errorf(err, "failed to initialize qdrant")
		os.Exit(1)
	}
	qdrantCancel()

	resources.Add(func(ctx context.Context) error {
		return qdrantClient.Client.Close()
	})

	embRepo := qdrantRepo.NewEmbeddingRepo(qdrantClient.Client, cfg.Qdrant)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	resources.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, logger)

	conn, err := grpc.NewClient(
		cfg.Embedder.Addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()), // явное указание gRPC-клиенту использовать НЕзащищённое соединение (без TLS).
	)
	if err != nil {
		logger.Errorf(err, "failed to initialize grpc client")
		os.Exit(1)
	}
	defer conn.Close()

	embClient := proto.NewEmbedderServiceClient(conn)
	emb := embedder.New(embClient, cfg.Embedder.MaxConcurrent, cfg.Embedder.MaxRetries, logger)

	preprocessor := preprocess.New(logger)
	idx := index.New(logger, cfg.Index.VectorSize)

	var ranker rank.Strategy
	switch cfg.Search.Strategy {
	case "qdrant":
		ranker = rank.NewQdrant(embRepo)
	default:
		ranker = rank.NewBruteForce()
	}
	logger.Infof("ranking strategy: %s", cfg.Search.Strategy)

	producer, err := kafka.NewProducer(logger, cfg.Kafka)
	if err != nil {
		logger.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		logger.Warnf("failed to ensure kafka topic: %v", err)
	}
	resources.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	shutdownRootCtx, shutdownRootCancel := context.WithCancel(context.Background())
	defer shutdownRootCancel()

	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, logger, shutdownRootCtx)

	searchUC := usecase.NewSearchUC(preprocessor, emb, idx, ranker, cfg.Search, logger)
	catalogUC := usecase.NewCatalogUC(
		productRepo,
		categoryRepo,
		outboxRepo,
		db.Pool,
		preprocessor,
		emb,
		imagesInfra,
		embRepo,
		idx,
		producer,
		cacheRepo,
		logger,
	)
	indexUC := usecase.NewIndexUC(
		catalogSource,
		preprocessor,
		emb,
		idx,
		snapshotRepo,
		producer,
		producer,
		cfg.Embedder,
		logger,
	)

	restoreCtx, restoreCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := indexUC.Restore(restoreCtx); err != nil {
		// Сервис стартует и с пустым индексом, поиск вернет пустую выдачу
		logger.Warnf("failed to restore index snapshot: %v", err)
	}
	restoreCancel()

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, logger, producer, db.Dsn)
	outboxWorker.Start(shutdownRootCtx)

	grpcSrv := v1Grpc.NewGRPCServer(cfg.Grpc)
	grpcSrv.RegisterServices(searchUC, logger)

	grpcErrCh := make(chan error, 1)
	go func() {
		logger.Infof("gRPC server starting on %s:%s", cfg.Grpc.NetworkMode, cfg.Grpc.Port)
		if err := grpcSrv.Start(); err != nil {
			logger.Errorf(err, "gRPC server failed")
			grpcErrCh <- err
		}
	}()

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(searchUC, catalogUC, indexUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		logger.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Errorf(err, "HTTP server shutdown error")
	} else {
		logger.Infof("HTTP server stopped")
	}

	if err := grpcSrv.Stop(shutdownCtx); err != nil {
		if !errors.Is(err, context.DeadlineExceeded) {
			logger.Errorf(err, "gRPC server shutdown error")
		} else {
			logger.Warnf("gRPC server shutdown timeout")
		}
	} else {
		logger.Infof("gRPC server stopped")
	}

	shutdownRootCancel()
	outboxWorker.Stop()

	done := make(chan error, 1)
	go func() {
		done <- imagesInfra.WaitForCleanup(shutdownCtx)
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.Warnf("MinIO cleanup error: %v", err)
		} else {
			logger.Infof("MinIO cleanup completed")
		}
	case <-time.After(5 * time.Second): // локальный таймаут ожидания cleanup
		logger.Warnf("MinIO cleanup did not finish before shutdown, some temporary objects may remain")
	}

	// Ресурсы закрываются в порядке, обратном инициализации
	if err := resources.Close(shutdownCtx); err != nil {
		logger.Warnf("resource shutdown: %v", err)
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
