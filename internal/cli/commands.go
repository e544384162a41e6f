package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store"
	"github.com/0xHoneyJar/loa-freeside-sub007/internal/store/schema"
)

// ErrGuardFailed is returned by guard check when an invariant does not hold
var ErrGuardFailed = errors.New("conservation check failed")

func newSeedCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-system-accounts [community-id...]",
		Short: "Create the foundation and commons accounts, plus one pool per community",
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, svc *Services, out io.Writer) error {
				accounts, err := svc.Ledger.SeedSystemAccounts(ctx, args)
				if err != nil {
					return err
				}
				return r.print(out, accounts, func(w io.Writer) {
					tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "ID\tTYPE\tENTITY")
					for _, a := range accounts {
						fmt.Fprintf(tw, "%s\t%s\t%s\n", a.ID, a.EntityType, a.EntityID)
					}
					_ = tw.Flush()
				})
			})
		},
	}
}

func newConfigCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and change billing configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every configuration value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, svc *Services, out io.Writer) error {
				values, err := svc.Config.List(ctx)
				if err != nil {
					return err
				}
				return r.print(out, values, func(w io.Writer) {
					tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "KEY\tVALUE\tUPDATED")
					for _, v := range values {
						fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Key, v.Value, v.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"))
					}
					_ = tw.Flush()
				})
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, svc *Services, out io.Writer) error {
				value, ok, err := svc.Config.Get(ctx, args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("config key %q is not set", args[0])
				}
				return r.print(out, map[string]string{"key": args[0], "value": value}, func(w io.Writer) {
					fmt.Fprintln(w, value)
				})
			})
		},
	})

	var description string
	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, svc *Services, out io.Writer) error {
				var desc *string
				if cmd.Flags().Changed("description") {
					desc = &description
				}
				if err := svc.Config.Set(ctx, args[0], args[1], desc); err != nil {
					return err
				}
				return r.print(out, map[string]string{"key": args[0], "value": args[1]}, func(w io.Writer) {
					fmt.Fprintf(w, "%s = %s\n", args[0], args[1])
				})
			})
		},
	}
	set.Flags().StringVar(&description, "description", "", "description stored with the value")
	cmd.AddCommand(set)

	return cmd
}

func newDLQCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dlq",
		Short: "Inspect and requeue dead-lettered operations",
	}

	var status, operation string
	var limit int
	var offset uint64
	list := &cobra.Command{
		Use:   "list",
		Short: "List DLQ entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := store.DLQEntryFilter{Limit: limit, Offset: offset}
			if status != "" {
				s := schema.DLQStatus(status)
				if !s.Valid() {
					return fmt.Errorf("unsupported status %q", status)
				}
				filter.Status = &s
			}
			if operation != "" {
				op := schema.DLQOperationType(operation)
				if !op.Valid() {
					return fmt.Errorf("unsupported operation %q", operation)
				}
				filter.OperationType = &op
			}

			return r.run(cmd, func(ctx context.Context, svc *Services, out io.Writer) error {
				entries, total, err := svc.DLQ.List(ctx, filter)
				if err != nil {
					return err
				}
				return r.print(out, map[string]any{"entries": entries, "total": total}, func(w io.Writer) {
					tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "ID\tOPERATION\tSTATUS\tRETRIES\tNEXT RETRY\tERROR")
					for _, e := range entries {
						errMsg := ""
						if e.ErrorMessage != nil {
							errMsg = *e.ErrorMessage
						}
						fmt.Fprintf(tw, "%d\t%s\t%s\t%d/%d\t%s\t%s\n",
							e.ID, e.OperationType, e.Status, e.RetryCount, e.MaxRetries,
							e.NextRetryAt.Format("2006-01-02T15:04:05Z07:00"), errMsg)
					}
					_ = tw.Flush()
					fmt.Fprintf(w, "%d of %d entries\n", len(entries), total)
				})
			})
		},
	}
	list.Flags().StringVar(&status, "status", "", "filter by status (pending|processing|completed|failed|manual_review)")
	list.Flags().StringVar(&operation, "operation", "", "filter by operation type")
	list.Flags().IntVar(&limit, "limit", 50, "maximum entries to list")
	list.Flags().Uint64Var(&offset, "offset", 0, "entries to skip")
	cmd.AddCommand(list)

	cmd.AddCommand(&cobra.Command{
		Use:   "requeue <id>",
		Short: "Reset a failed or manual_review entry to pending with a fresh retry budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid DLQ entry id %q", args[0])
			}
			return r.run(cmd, func(ctx context.Context, svc *Services, out io.Writer) error {
				entry, err := svc.DLQ.Requeue(ctx, id)
				if err != nil {
					return err
				}
				return r.print(out, entry, func(w io.Writer) {
					fmt.Fprintf(w, "entry %d requeued, next retry at %s\n", entry.ID, entry.NextRetryAt.Format("2006-01-02T15:04:05Z07:00"))
				})
			})
		},
	})

	return cmd
}

func newGuardCommand(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guard",
		Short: "Conservation guard",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Check the conservation invariants system-wide; exits non-zero on a violation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, svc *Services, out io.Writer) error {
				report, err := svc.Ledger.CheckSystem(ctx)
				if err != nil {
					return err
				}
				if err := r.print(out, report, func(w io.Writer) {
					if report.Passed {
						fmt.Fprintln(w, "conservation: ok")
						return
					}
					fmt.Fprintf(w, "conservation: %d violation(s)\n", len(report.Violations))
					for _, v := range report.Violations {
						line := fmt.Sprintf("  %s: %s", v.Invariant, v.Message)
						if v.AccountID != "" {
							line += " (account " + v.AccountID + ")"
						}
						fmt.Fprintln(w, line)
					}
				}); err != nil {
					return err
				}
				if !report.Passed {
					return ErrGuardFailed
				}
				return nil
			})
		},
	})

	return cmd
}
