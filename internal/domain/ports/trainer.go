package ports

import (
	"context"

	"logix-research/internal/domain/model"
)

// Trainer launches a model training run with the given hyperparameters.
type Trainer interface {
	Train(ctx context.Context, spec model.TrainingSpec) error
}
