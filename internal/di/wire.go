//go:build wireinject

package di

import (
	"github.com/google/wire"

	"logix-research/internal/adapter/articles"
	"logix-research/internal/adapter/logging"
	"logix-research/internal/app"
	"logix-research/internal/config"
	"logix-research/internal/domain/ports"
	"logix-research/internal/training"
	"logix-research/internal/usecase"
)

// InitializeApp wires the research server components together.
func InitializeApp(cfg *config.Config) (*app.App, error) {
	wire.Build(
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		articles.NewMockFeed,
		wire.Bind(new(ports.ArticleProvider), new(*articles.MockFeed)),
		usecase.NewResearch,
		wire.Bind(new(ports.Researcher), new(*usecase.Research)),
		wire.Bind(new(app.StatsSource), new(*usecase.Research)),
		provideRouterOptions,
		provideHandler,
		provideAppOptions,
		app.New,
	)
	return nil, nil
}

// InitializeTrainer wires the training launcher.
func InitializeTrainer(cfg *config.Config) (ports.Trainer, error) {
	wire.Build(
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideTrainer,
		wire.Bind(new(ports.Trainer), new(*training.Trainer)),
	)
	return nil, nil
}
