package opts

import (
	"github.com/walteh/notepaste/pkg/config"
	"github.com/walteh/notepaste/pkg/log"
	"github.com/walteh/notepaste/pkg/operation"
	"github.com/walteh/notepaste/pkg/vault"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Settings *config.Settings
	Vault    *vault.Vault
	Logger   *log.Logger
	Operator operation.Operator
	Runner   *operation.Runner
}

// NotePath turns a command line argument into a vault path.
func (o *RootOpts) NotePath(arg string) (string, error) {
	if o.Vault == nil {
		return "", errors.New("vault is not open")
	}
	p, err := o.Vault.Rel(arg)
	if err != nil {
		return "", err
	}
	if !o.Vault.Exists(p) {
		return "", errors.Errorf("note %s not found in vault %s", p, o.Vault.Root())
	}
	return p, nil
}
