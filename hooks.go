package userdb

import (
	"context"
)

// Lifecycle Interfaces
type BeforeCreateInterface interface {
	BeforeCreate(context.Context) error
}

type BeforeUpdateInterface interface {
	BeforeUpdate(context.Context) error
}

func triggerBeforeCreate(ctx context.Context, model any) error {
	if m, ok := model.(BeforeCreateInterface); ok {
		return m.BeforeCreate(ctx)
	}
	return nil
}

func triggerBeforeUpdate(ctx context.Context, model any) error {
	if m, ok := model.(BeforeUpdateInterface); ok {
		return m.BeforeUpdate(ctx)
	}
	return nil
}
