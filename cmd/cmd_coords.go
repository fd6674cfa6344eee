// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spectraldecomp/gc-utils/spatial"
)

var coordsCmd = &cobra.Command{
	Use:   "coords",
	Short: "Convert coordinates, calculate distances and project waypoints",
}

// parsePoints parses each argument as a coordinate string.
func parsePoints(args []string) ([]spatial.Point, error) {
	points := make([]spatial.Point, 0, len(args))

	for _, arg := range args {
		p, err := spatial.ParsePoint(arg)
		if err != nil {
			return nil, err
		}

		points = append(points, p)
	}

	return points, nil
}

// outputFormat resolves the --format flag against the configured default.
func outputFormat(flag string) (spatial.Format, error) {
	if flag == "" {
		flag = cfg.Format
	}

	return spatial.ParseFormat(flag)
}

// outputUnit resolves the --unit flag against the configured default.
func outputUnit(flag string) (spatial.DistanceUnit, error) {
	if flag == "" {
		flag = cfg.Unit
	}

	return spatial.ParseDistanceUnit(flag)
}

var (
	coordsFormat     string
	coordsUnit       string
	projectDistance  float64
	projectBearing   float64
	cellResolution   int
	coordsConvertCmd = &cobra.Command{
		Use:   "convert <coordinate>",
		Short: "Parse a coordinate and print it in another notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			format, err := outputFormat(coordsFormat)
			if err != nil {
				return err
			}

			p, err := spatial.ParsePoint(args[0])
			if err != nil {
				return err
			}

			out, err := spatial.FormatPoint(p, format)
			if err != nil {
				return err
			}

			fmt.Println(out)

			return nil
		},
	}
)

var coordsDistanceCmd = &cobra.Command{
	Use:   "distance <coordinate> <coordinate>",
	Short: "Great-circle distance between two coordinates",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		unit, err := outputUnit(coordsUnit)
		if err != nil {
			return err
		}

		points, err := parsePoints(args)
		if err != nil {
			return err
		}

		d, err := spatial.Distance(points[0], points[1], unit)
		if err != nil {
			return err
		}

		fmt.Printf("Distance: %.3f %s\n", d, unit.Label())

		return nil
	},
}

var coordsProjectCmd = &cobra.Command{
	Use:   "project <coordinate>",
	Short: "Project a waypoint from a coordinate, distance and bearing",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		unit, err := outputUnit(coordsUnit)
		if err != nil {
			return err
		}

		format, err := outputFormat(coordsFormat)
		if err != nil {
			return err
		}

		origin, err := spatial.ParsePoint(args[0])
		if err != nil {
			return err
		}

		dest, err := spatial.Project(origin, projectDistance, projectBearing, unit)
		if err != nil {
			return err
		}

		out, err := spatial.FormatPoint(dest, format)
		if err != nil {
			return err
		}

		fmt.Println(out)

		return nil
	},
}

var coordsCellCmd = &cobra.Command{
	Use:   "cell <coordinate>",
	Short: "H3 cell index containing a coordinate",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		p, err := spatial.ParsePoint(args[0])
		if err != nil {
			return err
		}

		cell, err := spatial.Cell(p, cellResolution)
		if err != nil {
			return err
		}

		fmt.Println(cell)

		return nil
	},
}

func init() {
	coordsConvertCmd.Flags().StringVar(&coordsFormat, "format", "", "output format: decimal, ddm or dms")

	coordsDistanceCmd.Flags().StringVar(&coordsUnit, "unit", "", "distance unit: km, mi or nm")

	coordsProjectCmd.Flags().StringVar(&coordsUnit, "unit", "", "distance unit: km, mi or nm")
	coordsProjectCmd.Flags().StringVar(&coordsFormat, "format", "", "output format: decimal, ddm or dms")
	coordsProjectCmd.Flags().Float64Var(&projectDistance, "distance", 0, "distance to travel")
	coordsProjectCmd.Flags().Float64Var(&projectBearing, "bearing", 0, "bearing in degrees, clockwise from north")
	_ = coordsProjectCmd.MarkFlagRequired("distance")
	_ = coordsProjectCmd.MarkFlagRequired("bearing")

	coordsCellCmd.Flags().IntVar(&cellResolution, "resolution", 8, "H3 resolution (0-15)")

	coordsCmd.AddCommand(coordsConvertCmd)
	coordsCmd.AddCommand(coordsDistanceCmd)
	coordsCmd.AddCommand(coordsProjectCmd)
	coordsCmd.AddCommand(coordsCellCmd)
	rootCmd.AddCommand(coordsCmd)
}
