package opts

import (
	"io"

	"github.com/walteh/lessoncopy/pkg/config"
	"github.com/walteh/lessoncopy/pkg/curriculum"
	"github.com/walteh/lessoncopy/pkg/log"
	"github.com/walteh/lessoncopy/pkg/selector"
)

// RootOpts contains shared options used by all commands. Flags fill the
// first group; the root command's pre-run fills the rest.
type RootOpts struct {
	ConfigFile string
	EnvFile    string
	UI         string
	Debug      bool
	Verbose    bool
	DryRun     bool

	Stdout io.Writer
	Stderr io.Writer

	Conventions *config.Conventions
	Layout      *curriculum.Layout
	Console     *log.Logger

	// Prompter overrides the prompter picked from UI
	Prompter selector.Prompter
}

// GetPrompter returns the prompter to ask the user with.
func (o *RootOpts) GetPrompter() (selector.Prompter, error) {
	if o.Prompter != nil {
		return o.Prompter, nil
	}
	return selector.NewPrompter(selector.UI(o.UI))
}
