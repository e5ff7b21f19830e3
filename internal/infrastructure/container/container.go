// Package container provides dependency injection for the application.
package container

import (
	"io"
	"log/slog"

	"github.com/reglet-dev/logicgates/internal/application/ports"
	"github.com/reglet-dev/logicgates/internal/application/services"
	"github.com/reglet-dev/logicgates/internal/domain/gates"
	"github.com/reglet-dev/logicgates/internal/domain/truthtable"
	"github.com/reglet-dev/logicgates/internal/infrastructure/config"
	"github.com/reglet-dev/logicgates/internal/infrastructure/output"
	"github.com/reglet-dev/logicgates/internal/infrastructure/prompt"
)

// Container holds all application dependencies.
type Container struct {
	engine     *truthtable.Engine
	formatters ports.OutputFormatterFactory
	prompter   ports.GatePrompter
	config     *config.Config
	logger     *slog.Logger
}

// Options configure the container.
type Options struct {
	Config *config.Config
	Logger *slog.Logger

	// Prompter overrides the terminal prompter (tests).
	Prompter ports.GatePrompter
}

// New creates a new dependency injection container.
func New(opts Options) *Container {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Prompter == nil {
		opts.Prompter = prompt.NewTerminalPrompter()
	}

	return &Container{
		engine:     truthtable.NewEngine(gates.NewRegistry()),
		formatters: output.NewFormatterFactory(),
		prompter:   opts.Prompter,
		config:     opts.Config,
		logger:     opts.Logger,
	}
}

// Config returns the loaded configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Engine returns the truth table engine.
func (c *Container) Engine() *truthtable.Engine {
	return c.engine
}

// RenderTableUseCase returns the one-shot table use case.
func (c *Container) RenderTableUseCase() *services.RenderTableUseCase {
	return services.NewRenderTableUseCase(c.engine, c.formatters, c.logger)
}

// NewSession starts an explorer session with the configured selection.
func (c *Container) NewSession() *services.Session {
	return services.NewSession(c.engine, c.config.Selection, c.logger)
}

// ExploreUseCase returns the interactive use case writing tables to out
// in the configured format.
func (c *Container) ExploreUseCase(out io.Writer) (*services.ExploreUseCase, error) {
	formatter, err := c.formatters.Create(c.config.Format, out, ports.FormatterOptions{
		Bits:  c.config.Bits,
		Color: c.config.Color,
	})
	if err != nil {
		return nil, err
	}
	return services.NewExploreUseCase(c.prompter, formatter, out, c.logger), nil
}
