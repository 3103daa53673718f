package main

import (
	"context"
	"log/slog"
	"os"

	"healthplanner/config"
	"healthplanner/internal/delivery"
	"healthplanner/internal/delivery/api"
	"healthplanner/internal/delivery/api/middleware"
	"healthplanner/internal/delivery/api/router/handler"
	"healthplanner/internal/domain/repository"
	"healthplanner/internal/infra/auth"
	"healthplanner/internal/infra/catalog"
	logs "healthplanner/internal/infra/log"
	"healthplanner/internal/infra/persistence/mongo"
	"healthplanner/internal/infra/persistence/postgres"
	"healthplanner/internal/infra/pubsub"
	"healthplanner/internal/infra/random"
	"healthplanner/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

type storageParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type repositories struct {
	fx.Out

	UserRepo     repository.UserRepository
	GoalRepo     repository.GoalRepository
	ProgressRepo repository.ProgressRepository
}

// newRepositories opens the backend named by storage.driver and builds the
// repositories on it.
func newRepositories(params storageParams) (repositories, error) {
	switch params.Config.Storage.Driver {
	case config.StoragePostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return repositories{}, err
		}

		return repositories{
			UserRepo:     postgres.NewUserRepository(db),
			GoalRepo:     postgres.NewGoalRepository(db),
			ProgressRepo: postgres.NewProgressRepository(db),
		}, nil
	case config.StorageMongo:
		db, err := mongo.New(mongo.Params{Lifecycle: params.Lifecycle, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return repositories{}, err
		}

		return repositories{
			UserRepo:     mongo.NewUserRepository(db),
			GoalRepo:     mongo.NewGoalRepository(db),
			ProgressRepo: mongo.NewProgressRepository(db),
		}, nil
	default:
		return repositories{}, errors.Errorf("unsupported storage driver %q", params.Config.Storage.Driver)
	}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
			catalog.NewProvider,
			catalog.AsFoodCatalog,
			catalog.AsExerciseCatalog,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			random.NewSource,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewAuthService,
			impl.NewGoalService,
			impl.NewProgressService,
			impl.NewPlanService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewGoalHandler,
			handler.NewProgressHandler,
			handler.NewPlanHandler,
			handler.NewCatalogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
