package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/timewindow"
	"github.com/spf13/cobra"
)

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format <window>...",
		Short: "Print windows on a 12-hour clock",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			windows, err := a.parseAll(args)
			if err != nil {
				return err
			}
			a.printWindows(windows)
			return nil
		},
	}
}

func newIntersectsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "intersects <window> <other>...",
		Short: "Report whether a window intersects any of the others",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, others, err := a.parsePair(args)
			if err != nil {
				return err
			}
			if w.Intersects(others, a.cfg.Threshold) {
				fmt.Fprintln(a.out, "Intersection!")
			} else {
				fmt.Fprintln(a.out, "No intersection!")
			}
			return nil
		},
	}
}

func newContainedByCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contained-by <window> <other>...",
		Short: "Report whether any of the others encloses a window",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, others, err := a.parsePair(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, w.ContainedBy(others, a.cfg.Threshold))
			return nil
		},
	}
}

func newUnionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "union <window> <other>...",
		Short: "Merge a window with the others it intersects",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, others, err := a.parsePair(args)
			if err != nil {
				return err
			}
			a.printWindows(w.Union(others, a.cfg.Threshold))
			return nil
		},
	}
}

func newDifferenceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "difference <window> <other>...",
		Short: "Subtract each of the others from a window",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, others, err := a.parsePair(args)
			if err != nil {
				return err
			}
			a.printWindows(w.Difference(others))
			return nil
		},
	}
}

func newMergeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <window>...",
		Short: "Fold windows into as few as possible, joining within the threshold",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.strict {
				if _, err := a.parseAll(args); err != nil {
					return err
				}
			}
			a.printWindows(timewindow.Strings(args, a.cfg.Threshold))
			return nil
		},
	}
}

func (a *app) parse(s string) (timewindow.Window, error) {
	if a.strict {
		w, err := timewindow.ParseStrict(s)
		if err != nil {
			return timewindow.Window{}, errors.Wrapf(err, "window %q", s)
		}
		return w, nil
	}
	return timewindow.Parse(s), nil
}

func (a *app) parseAll(args []string) ([]timewindow.Window, error) {
	windows := make([]timewindow.Window, 0, len(args))
	for _, s := range args {
		w, err := a.parse(s)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func (a *app) parsePair(args []string) (timewindow.Window, []timewindow.Window, error) {
	windows, err := a.parseAll(args)
	if err != nil {
		return timewindow.Window{}, nil, err
	}
	return windows[0], windows[1:], nil
}

func (a *app) printWindows(windows []timewindow.Window) {
	for _, w := range windows {
		fmt.Fprintln(a.out, w.Format(a.cfg.Format))
	}
}
