//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"parcel-service/internal/entities"
	auth_login_post "parcel-service/internal/handlers/rest/auth_login_post"
	customer_get "parcel-service/internal/handlers/rest/customer_get"
	customer_post "parcel-service/internal/handlers/rest/customer_post"
	customer_put "parcel-service/internal/handlers/rest/customer_put"
	customers_get "parcel-service/internal/handlers/rest/customers_get"
	parcel_get "parcel-service/internal/handlers/rest/parcel_get"
	parcel_post "parcel-service/internal/handlers/rest/parcel_post"
	parcel_put "parcel-service/internal/handlers/rest/parcel_put"
	parcel_status_put "parcel-service/internal/handlers/rest/parcel_status_put"
	parcels_get "parcel-service/internal/handlers/rest/parcels_get"
	"parcel-service/internal/handlers/tasks/overdue_parcels"
	"parcel-service/internal/pkg/config"
	"parcel-service/internal/pkg/kafka"
	"parcel-service/internal/pkg/notifier"
	"parcel-service/internal/pkg/password"

	customerRepo "parcel-service/internal/repository/customer"
	parcelRepo "parcel-service/internal/repository/parcel"
	authService "parcel-service/internal/service/auth"
	customerService "parcel-service/internal/service/customer"
	parcelService "parcel-service/internal/service/parcel"

	"parcel-service/pkg/background"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/querier"
	"parcel-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SweepInterval time.Duration
)

type Application struct {
	ServiceParcel     ServiceParcel
	ServiceCustomer   ServiceCustomer
	ServiceAuth       ServiceAuth
	BackgroundWorkers *background.Worker
}

type ServiceParcel interface {
	parcels_get.Service
	parcel_get.Service
	parcel_post.Service
	parcel_put.Service
	parcel_status_put.Service
}

type ServiceCustomer interface {
	customers_get.Service
	customer_get.Service
	customer_post.Service
	customer_put.Service
}

type ServiceAuth interface {
	auth_login_post.Service
	ParseToken(tokenString string) (*entities.TokenClaims, error)
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSweepInterval,

		provideParcelRepository,
		provideCustomerRepository,
		provideNotifier,
		password.New,

		provideServiceParcel,
		provideServiceCustomer,
		provideServiceAuth,

		provideOverdueParcelsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceCustomer), new(*customerService.Customer)),
		wire.Bind(new(ServiceAuth), new(*authService.Auth)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.CustomerProvider), new(*customerRepo.Repository)),
		wire.Bind(new(parcelService.Notifier), new(*notifier.Notifier)),
		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),

		wire.Bind(new(customerService.Repository), new(*customerRepo.Repository)),
		wire.Bind(new(customerService.PasswordHasher), new(*password.Hasher)),

		wire.Bind(new(authService.CustomerProvider), new(*customerRepo.Repository)),
		wire.Bind(new(authService.PasswordComparer), new(*password.Hasher)),

		wire.Bind(new(overdue_parcels.Service), new(*parcelService.Parcel)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ParcelService *parcelService.Parcel
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-parcel-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideParcelRepository,
		provideCustomerRepository,
		provideNotifier,

		provideServiceParcel,

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.CustomerProvider), new(*customerRepo.Repository)),
		wire.Bind(new(parcelService.Notifier), new(*notifier.Notifier)),
		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideNotifier(log logger.Logger, producer *kafka.Producer, cfg *config.Config) *notifier.Notifier {
	return notifier.New(log, producer, cfg.Kafka.NotificationsTopic)
}

func provideServiceParcel(
	repository parcelService.Repository,
	customerProvider parcelService.CustomerProvider,
	statusNotifier parcelService.Notifier,
	txManager parcelService.TxManager,
	log logger.Logger,
) *parcelService.Parcel {
	return parcelService.New(repository, customerProvider, statusNotifier, txManager, log)
}

func provideServiceCustomer(
	repository customerService.Repository,
	hasher customerService.PasswordHasher,
) *customerService.Customer {
	return customerService.New(repository, hasher)
}

func provideServiceAuth(
	customerProvider authService.CustomerProvider,
	comparer authService.PasswordComparer,
	cfg *config.Config,
) *authService.Auth {
	return authService.New(customerProvider, comparer, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.OverdueSweepInterval)
}

func provideOverdueParcelsTask(
	log logger.Logger,
	parcelService overdue_parcels.Service,
	interval SweepInterval,
) *overdue_parcels.OverdueParcels {
	return overdue_parcels.NewOverdueParcels(log, parcelService, time.Duration(interval))
}

func provideTaskList(
	overdueParcelsTask *overdue_parcels.OverdueParcels,
) []background.Task {
	return []background.Task{
		overdueParcelsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
