package main

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/nestegg-backend/internal/adapter/grpc"
	"github.com/simaogato/nestegg-backend/internal/adapter/grpc/nesteggv1"
	"github.com/simaogato/nestegg-backend/internal/adapter/pricefeed"
	"github.com/simaogato/nestegg-backend/internal/adapter/repository/memory"
	"github.com/simaogato/nestegg-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/nestegg-backend/internal/config"
	"github.com/simaogato/nestegg-backend/internal/domain"
	"github.com/simaogato/nestegg-backend/internal/usecase/dashboard"
	"github.com/simaogato/nestegg-backend/internal/usecase/goal"
	"github.com/simaogato/nestegg-backend/internal/usecase/goalform"
	"github.com/simaogato/nestegg-backend/internal/usecase/portfolio"
	"github.com/simaogato/nestegg-backend/internal/usecase/price"
	"github.com/simaogato/nestegg-backend/internal/usecase/seeder"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC server and the price refresher",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := configureLogger(cmd, cfg.LogLevel, cfg.IsProduction()); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	// 1. Setup Storage
	goalStore, portfolioStore, closeStore, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.SeedDemo {
		if err := seeder.NewDemoSeeder(goalStore, portfolioStore).Seed(ctx); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		logger.Info().Msg("demo data seeded")
	}

	// 2. Price feed
	feed := pricefeed.NewClient(cfg.Price.URL, cfg.Price.JSONPath,
		pricefeed.WithTimePath(cfg.Price.TimeJSONPath),
		pricefeed.WithRateLimit(cfg.Price.RateLimit),
		pricefeed.WithLogger(logger),
	)
	refresher := price.NewRefresher(feed, price.WithBaseline(cfg.Price.Baseline))
	worker := price.NewWorker(refresher, logger, price.WorkerConfig{Interval: cfg.Price.RefreshInterval})

	// 3. Initialize Services (Use Cases)
	goalService := goal.NewGoalService(goalStore)
	portfolioService := portfolio.NewPortfolioService(portfolioStore)
	dashboardService := dashboard.NewDashboardService(portfolioStore, goalStore, refresher)

	// 4. gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.AuthInterceptor(cfg.APIToken, cfg.APIUser),
		),
	)
	srv := grpcadapter.NewServer(goalform.NewDrafts(), goalService, portfolioService, refresher, dashboardService)
	nesteggv1.RegisterNestEggServiceServer(grpcServer, srv)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(nesteggv1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", cfg.GRPCAddr).Str("goal_store", cfg.GoalStore).Msg("gRPC server listening")
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpclib.ErrServerStopped) {
			return fmt.Errorf("failed to serve gRPC server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return worker.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down gracefully")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info().Msg("gRPC server stopped")
	return nil
}

// openStores returns the goal and portfolio stores selected by GOAL_STORE
func openStores(ctx context.Context, cfg *config.Config) (domain.GoalStore, domain.PortfolioStore, func(), error) {
	if cfg.GoalStore != config.GoalStorePostgres {
		return memory.NewGoalStore(), memory.NewPortfolioStore(), func() {}, nil
	}

	db, err := postgres.NewDB(ctx, cfg.DBConnStr)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, nil, err
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close database")
		}
	}
	return postgres.NewGoalRepository(db), postgres.NewPortfolioRepository(db), closeDB, nil
}
