package usecase

import "context"

// BootstrapReport counts what a seeding run created and skipped.
type BootstrapReport struct {
	PlanetsCreated int
	UsersCreated   int
	ShipsCreated   int
	Skipped        int
}

// BootstrapUsecase seeds the default catalog and accounts. Running it twice is harmless.
type BootstrapUsecase interface {
	Seed(ctx context.Context) (*BootstrapReport, error)
}
