package usecases_port

import "context"

type DeletePostUseCasePort interface {
	Execute(ctx context.Context, id, brokerEmail string) error
}
