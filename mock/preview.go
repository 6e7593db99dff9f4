package mock

import (
	"context"

	"github.com/fwojciec/symdex"
)

var _ symdex.PreviewStore = (*PreviewStore)(nil)

// PreviewStore is a mock implementation of symdex.PreviewStore.
type PreviewStore struct {
	OpenFn   func() error
	SaveFn   func(ctx context.Context, p *symdex.Preview) (string, error)
	CommitFn func() error
	AbortFn  func() error
}

func (s *PreviewStore) Open() error {
	return s.OpenFn()
}

func (s *PreviewStore) Save(ctx context.Context, p *symdex.Preview) (string, error) {
	return s.SaveFn(ctx, p)
}

func (s *PreviewStore) Commit() error {
	return s.CommitFn()
}

func (s *PreviewStore) Abort() error {
	return s.AbortFn()
}
