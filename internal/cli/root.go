package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/billingconfig"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/dlq"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/ledger"
)

// ValidFormats defines the allowed output formats
var ValidFormats = []string{"text", "json"}

// RootOptions holds global flags for all commands
type RootOptions struct {
	ConfigFile string
	EnvPath    string
	Format     string // "json" | "text"
}

// Services are the ledger components the commands operate on
type Services struct {
	Ledger ledger.Ledger
	Config billingconfig.Editor
	DLQ    dlq.Service
}

// Connector builds the services from the global options; close releases them
type Connector func(ctx context.Context, opts *RootOptions) (svc *Services, close func(), err error)

// NewRootCommand creates the root command of the operator CLI
func NewRootCommand(connect Connector) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Operator tooling for the credit ledger",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.EnvPath, "env", "config/", "path to environment files")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	r := &runner{opts: opts, connect: connect}
	cmd.AddCommand(newSeedCommand(r))
	cmd.AddCommand(newConfigCommand(r))
	cmd.AddCommand(newDLQCommand(r))
	cmd.AddCommand(newGuardCommand(r))

	return cmd
}

// runner connects lazily so that flag errors never touch the database
type runner struct {
	opts    *RootOptions
	connect Connector
}

func (r *runner) run(cmd *cobra.Command, fn func(ctx context.Context, svc *Services, out io.Writer) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, closeFn, err := r.connect(ctx, r.opts)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer closeFn()

	return fn(ctx, svc, cmd.OutOrStdout())
}

// print writes v as indented JSON, or calls text for the text format
func (r *runner) print(out io.Writer, v any, text func(w io.Writer)) error {
	if r.opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(out)
	return nil
}
