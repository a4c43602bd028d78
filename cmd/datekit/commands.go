package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/username/datekit/pkg/dateutil"
	"go.uber.org/zap"
)

type offsetOp func(date string, n int) (string, error)
type offsetUnixOp func(date int64, n int) (int64, error)

func monthsLaterCmd(a *app) *cobra.Command {
	return offsetCmd(a, "months-later DATE N", "Date N months later, clamped to the end of the month",
		dateutil.MonthsLater[string], dateutil.MonthsLater[int64])
}

func monthsAgoCmd(a *app) *cobra.Command {
	return offsetCmd(a, "months-ago DATE N", "Date N months earlier, clamped to the end of the month",
		dateutil.MonthsAgo[string], dateutil.MonthsAgo[int64])
}

func firstDayCmd(a *app) *cobra.Command {
	return offsetCmd(a, "first-day DATE N", "First day of the month N months after DATE",
		dateutil.FirstDayOfMonthsLater[string], dateutil.FirstDayOfMonthsLater[int64])
}

func lastDayCmd(a *app) *cobra.Command {
	var unix bool

	cmd := &cobra.Command{
		Use:   "last-day DATE",
		Short: "Last day of DATE's month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOffset(cmd, args[0], 0, unix,
				func(d string, _ int) (string, error) { return dateutil.LastDayOfMonth(d) },
				func(d int64, _ int) (int64, error) { return dateutil.LastDayOfMonth(d) })
		},
	}

	cmd.Flags().BoolVar(&unix, "unix", false, "DATE is a Unix timestamp in seconds")
	return cmd
}

func offsetCmd(a *app, use, short string, op offsetOp, opUnix offsetUnixOp) *cobra.Command {
	var unix bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid month offset %q: %w", args[1], err)
			}
			return a.runOffset(cmd, args[0], n, unix, op, opUnix)
		},
	}

	cmd.Flags().BoolVar(&unix, "unix", false, "DATE is a Unix timestamp in seconds")
	return cmd
}

// runOffset applies op to DATE keeping its shape: text in, text out, or
// Unix seconds in and out with --unix.
func (a *app) runOffset(cmd *cobra.Command, raw string, n int, unix bool, op offsetOp, opUnix offsetUnixOp) error {
	var result string
	if unix {
		sec, err := parseUnix(raw)
		if err != nil {
			return err
		}
		out, err := opUnix(sec, n)
		if err != nil {
			return err
		}
		result = strconv.FormatInt(out, 10)
	} else {
		out, err := op(raw, n)
		if err != nil {
			return err
		}
		result = out
	}

	a.logger.Debug("Computed date",
		zap.String("command", cmd.Name()),
		zap.String("date", raw),
		zap.Int("offset", n),
		zap.String("result", result))

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

func mondayCmd(a *app) *cobra.Command {
	var unix bool
	var layout string

	cmd := &cobra.Command{
		Use:   "monday DATE",
		Short: "Monday of the Monday-Sunday week containing DATE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if layout == "" {
				layout = a.cfg.Formats.GetMondayLayout()
			}
			return a.runFormat(cmd, args[0], unix,
				func(d string) (string, error) { return dateutil.MondayOfWeek(d, layout) },
				func(d int64) (string, error) { return dateutil.MondayOfWeek(d, layout) })
		},
	}

	cmd.Flags().BoolVar(&unix, "unix", false, "DATE is a Unix timestamp in seconds")
	cmd.Flags().StringVarP(&layout, "format", "f", "", "Go layout for the result (default from config)")
	return cmd
}

func labelCmd(a *app) *cobra.Command {
	var unix bool
	var layout string

	cmd := &cobra.Command{
		Use:   "label DATE",
		Short: "Format DATE; Mon and Monday become the configured weekday names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if layout == "" {
				layout = a.cfg.Formats.GetLabelLayout()
			}
			loc := a.cfg.WeekdayLocale()
			return a.runFormat(cmd, args[0], unix,
				func(d string) (string, error) { return dateutil.DateLabelIn(loc, d, layout) },
				func(d int64) (string, error) { return dateutil.DateLabelIn(loc, d, layout) })
		},
	}

	cmd.Flags().BoolVar(&unix, "unix", false, "DATE is a Unix timestamp in seconds")
	cmd.Flags().StringVarP(&layout, "format", "f", "", "Go layout (default from config)")
	return cmd
}

func fiscalCmd(a *app) *cobra.Command {
	var unix bool
	var label bool

	cmd := &cobra.Command{
		Use:   "fiscal DATE",
		Short: "Fiscal year and half of DATE (April start), e.g. 20171",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			render := func(period string) (string, error) {
				if !label {
					return period, nil
				}
				return dateutil.HalfYearLabel(period)
			}
			return a.runFormat(cmd, args[0], unix,
				func(d string) (string, error) {
					p, err := dateutil.FiscalYearAndHalf(d)
					if err != nil {
						return "", err
					}
					return render(p)
				},
				func(d int64) (string, error) {
					p, err := dateutil.FiscalYearAndHalf(d)
					if err != nil {
						return "", err
					}
					return render(p)
				})
		},
	}

	cmd.Flags().BoolVar(&unix, "unix", false, "DATE is a Unix timestamp in seconds")
	cmd.Flags().BoolVar(&label, "label", false, "Print the half as a label, e.g. 2017年上期")
	return cmd
}

func (a *app) runFormat(cmd *cobra.Command, raw string, unix bool, op func(string) (string, error), opUnix func(int64) (string, error)) error {
	var result string
	var err error
	if unix {
		sec, perr := parseUnix(raw)
		if perr != nil {
			return perr
		}
		result, err = opUnix(sec)
	} else {
		result, err = op(raw)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("Formatted date",
		zap.String("command", cmd.Name()),
		zap.String("date", raw),
		zap.String("result", result))

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

func halfLabelCmd(a *app) *cobra.Command {
	return labelOnlyCmd(a, "half-label YYYYh", "Label a fiscal half, e.g. 20171 -> 2017年上期", dateutil.HalfYearLabel)
}

func yearMonthLabelCmd(a *app) *cobra.Command {
	return labelOnlyCmd(a, "year-month-label YYYYMM", "Label a year-month, e.g. 201706 -> 2017年06月", dateutil.YearMonthLabel)
}

func timeLabelCmd(a *app) *cobra.Command {
	return labelOnlyCmd(a, "time-label HHMM", "Format HHMM as HH:MM; empty input is printed as is", dateutil.TimeLabel)
}

func labelOnlyCmd(a *app, use, short string, fn func(string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := fn(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("Labeled value",
				zap.String("command", cmd.Name()),
				zap.String("input", args[0]),
				zap.String("result", result))
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func timeDiffCmd(a *app) *cobra.Command {
	return timePairCmd(a, "time-diff START END", "END-START as HHMM; an earlier END is on the next day", dateutil.TimeDifference)
}

func timeAddCmd(a *app) *cobra.Command {
	return timePairCmd(a, "time-add START DIFF", "START+DIFF as HHMM, wrapping past midnight once", dateutil.AddTimeOffset)
}

// timePairCmd prints nothing when either argument is empty.
func timePairCmd(a *app, use, short string, fn func(string, string) (string, bool, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, ok, err := fn(args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				a.logger.Debug("Empty time input", zap.String("command", cmd.Name()))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func yearsCmd(a *app) *cobra.Command {
	var desc bool
	var step int

	cmd := &cobra.Command{
		Use:   "years BEGIN END",
		Short: "List years BEGIN..END",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			begin, end, err := parseBounds(args)
			if err != nil {
				return err
			}
			list, err := dateutil.MakeYearListFunc(begin, end, !desc, step, dateutil.SameKeyValue)
			if err != nil {
				return err
			}
			return printList(a, cmd, list)
		},
	}

	cmd.Flags().BoolVar(&desc, "desc", false, "List from END down to BEGIN")
	cmd.Flags().IntVar(&step, "step", 1, "Years between entries")
	return cmd
}

func monthsCmd(a *app) *cobra.Command {
	var desc bool
	var begin, end, step int

	cmd := &cobra.Command{
		Use:   "months",
		Short: "List zero-padded months",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := dateutil.MakeMonthListFunc(!desc, begin, end, step, nil)
			if err != nil {
				return err
			}
			return printList(a, cmd, list)
		},
	}

	cmd.Flags().BoolVar(&desc, "desc", false, "List from --end down to --begin")
	cmd.Flags().IntVar(&begin, "begin", 1, "First month")
	cmd.Flags().IntVar(&end, "end", 12, "Last month")
	cmd.Flags().IntVar(&step, "step", 1, "Months between entries")
	return cmd
}

func yearMonthsCmd(a *app) *cobra.Command {
	var desc bool

	cmd := &cobra.Command{
		Use:   "year-months BEGIN END",
		Short: "List year-months BEGIN..END (YYYYMM) with labels",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			begin, end, err := parseBounds(args)
			if err != nil {
				return err
			}
			list, err := dateutil.MakeYearMonthList(begin, end, !desc)
			if err != nil {
				return err
			}
			return printList(a, cmd, list)
		},
	}

	cmd.Flags().BoolVar(&desc, "desc", false, "List from END down to BEGIN")
	return cmd
}

func parseUnix(raw string) (int64, error) {
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid unix timestamp %q: %w", raw, err)
	}
	return sec, nil
}

func parseBounds(args []string) (int, int, error) {
	begin, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid BEGIN %q: %w", args[0], err)
	}
	end, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid END %q: %w", args[1], err)
	}
	return begin, end, nil
}
