package usecases_port

import "context"

type DeletePropertyUseCasePort interface {
	Execute(ctx context.Context, id string) error
}
