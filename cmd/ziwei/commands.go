// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/petar-djukic/go-ziwei/pkg/types"
	"github.com/petar-djukic/go-ziwei/pkg/ziwei"
)

// newNatalCmd creates the "natal" command.
func newNatalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "natal",
		Short: "Show the natal chart with birth-year transformations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(e ziwei.Engine, c *types.Chart) (any, error) {
				ov, err := e.Natal(c)
				if err != nil {
					return nil, err
				}
				return ziwei.NewRecord(ov), nil
			})
		},
	}
}

// newDecadeCmd creates the "decade" command.
func newDecadeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decade",
		Short: "Show the ten-year period covering an age",
		RunE: func(cmd *cobra.Command, args []string) error {
			age, _ := cmd.Flags().GetInt("age")
			return a.run(cmd, func(e ziwei.Engine, c *types.Chart) (any, error) {
				ov, err := e.Decade(c, age)
				if err != nil {
					return nil, err
				}
				return ziwei.NewRecord(ov), nil
			})
		},
	}
	cmd.Flags().Int("age", 0, "Nominal age (required)")
	cmd.MarkFlagRequired("age")
	return cmd
}

// newDecadesCmd creates the "decades" command.
func newDecadesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decades",
		Short: "List every ten-year period, marking the one covering an age",
		RunE: func(cmd *cobra.Command, args []string) error {
			age, _ := cmd.Flags().GetInt("age")
			return a.run(cmd, func(e ziwei.Engine, c *types.Chart) (any, error) {
				periods, err := e.Decades(c, age)
				if err != nil {
					return nil, err
				}
				return ziwei.NewDecadeRecords(periods), nil
			})
		},
	}
	cmd.Flags().Int("age", 0, "Nominal age")
	return cmd
}

// newYearCmd creates the "year" command.
func newYearCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "year",
		Short: "Show the overlay of a lunar year",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, _ := cmd.Flags().GetInt("year")
			return a.run(cmd, func(e ziwei.Engine, c *types.Chart) (any, error) {
				ov, err := e.Year(c, year)
				if err != nil {
					return nil, err
				}
				return ziwei.NewRecord(ov), nil
			})
		},
	}
	cmd.Flags().Int("year", 0, "Lunar year (required)")
	cmd.MarkFlagRequired("year")
	return cmd
}

// newMonthCmd creates the "month" command. Without --month it prints all
// twelve months of the year.
func newMonthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show the overlay of a lunar month",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, _ := cmd.Flags().GetInt("year")
			month, _ := cmd.Flags().GetInt("month")
			return a.run(cmd, func(e ziwei.Engine, c *types.Chart) (any, error) {
				if month == 0 {
					ovs, err := e.Months(c, year)
					if err != nil {
						return nil, err
					}
					recs := make([]ziwei.Record, 0, len(ovs))
					for _, ov := range ovs {
						recs = append(recs, ziwei.NewRecord(ov))
					}
					return recs, nil
				}
				ov, err := e.Month(c, year, month)
				if err != nil {
					return nil, err
				}
				return ziwei.NewRecord(ov), nil
			})
		},
	}
	cmd.Flags().Int("year", 0, "Lunar year (required)")
	cmd.Flags().Int("month", 0, "Lunar month 1-12 (default all)")
	cmd.MarkFlagRequired("year")
	return cmd
}

// newDayCmd creates the "day" command.
func newDayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the overlay of a lunar day",
		RunE: func(cmd *cobra.Command, args []string) error {
			var d ziwei.LunarDate
			d.Year, _ = cmd.Flags().GetInt("year")
			d.Month, _ = cmd.Flags().GetInt("month")
			d.Day, _ = cmd.Flags().GetInt("day")
			d.Leap, _ = cmd.Flags().GetBool("leap")
			return a.run(cmd, func(e ziwei.Engine, c *types.Chart) (any, error) {
				ov, err := e.Day(c, d)
				if err != nil {
					return nil, err
				}
				return ziwei.NewRecord(ov), nil
			})
		},
	}
	cmd.Flags().Int("year", 0, "Lunar year (required)")
	cmd.Flags().Int("month", 0, "Lunar month 1-12 (required)")
	cmd.Flags().Int("day", 0, "Lunar day 1-30 (required)")
	cmd.Flags().Bool("leap", false, "The month is intercalary")
	cmd.MarkFlagRequired("year")
	cmd.MarkFlagRequired("month")
	cmd.MarkFlagRequired("day")
	return cmd
}
