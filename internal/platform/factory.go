package platform

import (
	"context"

	"github.com/aretw0/jot/pkg/core"
)

// New opens the store selected by opts and returns a loaded Service.
//
//	svc, err := jot.New("./notes", jot.WithAdapter("sqlite"))
//
// The uri argument is adapter-specific (see Init).
func New(uri string, opts ...Option) (*core.Service, error) {
	store, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}

	o := parseOptions(opts)
	service := core.NewService(store, core.Config{
		Logger:         o.logger,
		SeedCategories: o.seeds,
		Clock:          o.clock,
	})

	if err := service.Load(context.Background()); err != nil {
		_ = store.Close()
		return nil, err
	}
	return service, nil
}
