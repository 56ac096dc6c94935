package checkers

import (
	"context"
	"errors"
)

// Configurable is implemented by clients that need a credential to work.
type Configurable interface {
	Configured() bool
}

// CredentialChecker reports not-ready while a client has no credential. It does no I/O.
type CredentialChecker struct {
	name   string
	client Configurable
}

func NewCredentialChecker(name string, client Configurable) *CredentialChecker {
	return &CredentialChecker{name: name, client: client}
}

func (c *CredentialChecker) Name() string { return c.name }

func (c *CredentialChecker) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !c.client.Configured() {
		return errors.New("api key not configured")
	}
	return nil
}
