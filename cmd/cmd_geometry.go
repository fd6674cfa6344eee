// Copyright 2025 The gc-utils Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spectraldecomp/gc-utils/spatial"
)

var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Triangle and polygon constructions on coordinates",
}

var (
	geometryFormat   string
	geometryUnit     string
	geometryAreaUnit string
	withRadius       bool
	polygonFile      string
	polygonVertices  []string
)

// printPoint formats a computed point under a label, honoring --format.
func printPoint(label string, p spatial.Point) error {
	format, err := outputFormat(geometryFormat)
	if err != nil {
		return err
	}

	out, err := spatial.FormatPoint(p, format)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", label, out)

	return nil
}

var circumcenterCmd = &cobra.Command{
	Use:   "circumcenter <p1> <p2> <p3>",
	Short: "Center of the circle through three points",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		points, err := parsePoints(args)
		if err != nil {
			return err
		}

		center, err := spatial.Circumcenter(points[0], points[1], points[2])
		if err != nil {
			return err
		}

		if err := printPoint("Circumcenter", center); err != nil {
			return err
		}

		if withRadius {
			unit, err := outputUnit(geometryUnit)
			if err != nil {
				return err
			}

			radius, err := spatial.Circumradius(points[0], points[1], points[2], unit)
			if err != nil {
				return err
			}

			fmt.Printf("Circumradius: %.3f %s\n", radius, unit)
		}

		return nil
	},
}

var centroidCmd = &cobra.Command{
	Use:   "centroid <p1> [p2 …]",
	Short: "Center of mass of a set of points",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		points, err := parsePoints(args)
		if err != nil {
			return err
		}

		center, err := spatial.Centroid(points)
		if err != nil {
			return err
		}

		return printPoint("Centroid", center)
	},
}

var midpointCmd = &cobra.Command{
	Use:   "midpoint <p1> <p2>",
	Short: "Midpoint between two points",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		points, err := parsePoints(args)
		if err != nil {
			return err
		}

		return printPoint("Midpoint", spatial.Midpoint(points[0], points[1]))
	},
}

var boundingBoxCmd = &cobra.Command{
	Use:   "bounding-box <p1> [p2 …]",
	Short: "Smallest axis-aligned box containing all points",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		points, err := parsePoints(args)
		if err != nil {
			return err
		}

		minCorner, maxCorner, err := spatial.BoundingBox(points)
		if err != nil {
			return err
		}

		if err := printPoint("South-west", minCorner); err != nil {
			return err
		}

		return printPoint("North-east", maxCorner)
	},
}

var triangleAreaCmd = &cobra.Command{
	Use:   "triangle-area <p1> <p2> <p3>",
	Short: "Surface area of the triangle spanned by three points",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		unit, err := spatial.ParseAreaUnit(geometryAreaUnit)
		if err != nil {
			return err
		}

		points, err := parsePoints(args)
		if err != nil {
			return err
		}

		area, err := spatial.TriangleArea(points[0], points[1], points[2], unit)
		if err != nil {
			return err
		}

		fmt.Printf("Area: %.3f %s\n", area, unit)

		return nil
	},
}

var orthocenterCmd = &cobra.Command{
	Use:   "orthocenter <p1> <p2> <p3>",
	Short: "Intersection of the triangle's altitudes",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		points, err := parsePoints(args)
		if err != nil {
			return err
		}

		return printPoint("Orthocenter", spatial.Orthocenter(points[0], points[1], points[2]))
	},
}

var pointInPolygonCmd = &cobra.Command{
	Use:   "point-in-polygon <point>",
	Short: "Test whether a point lies inside a polygon",
	Long: `Tests a point against a polygon given either as a GeoJSON file
(--geojson) or as a list of coordinate strings (--polygon, repeated).`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		point, err := spatial.ParsePoint(args[0])
		if err != nil {
			return err
		}

		var polygon []spatial.Point

		switch {
		case polygonFile != "":
			polygon, err = spatial.LoadPolygon(polygonFile)
		case len(polygonVertices) > 0:
			polygon, err = parsePoints(polygonVertices)
		default:
			return fmt.Errorf("either --geojson or --polygon is required")
		}

		if err != nil {
			return err
		}

		if spatial.PointInPolygon(point, polygon) {
			fmt.Println("inside")
		} else {
			fmt.Println("outside")
		}

		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{
		circumcenterCmd, centroidCmd, midpointCmd,
		boundingBoxCmd, orthocenterCmd,
	} {
		c.Flags().StringVar(&geometryFormat, "format", "", "output format: decimal, ddm or dms")
	}

	circumcenterCmd.Flags().BoolVar(&withRadius, "radius", false, "also print the circumradius")
	circumcenterCmd.Flags().StringVar(&geometryUnit, "unit", "", "circumradius unit: km, mi or nm")

	triangleAreaCmd.Flags().StringVar(&geometryAreaUnit, "unit", "km²", "area unit: km², mi² or nm²")

	pointInPolygonCmd.Flags().StringVar(&polygonFile, "geojson", "", "GeoJSON file with the polygon")
	pointInPolygonCmd.Flags().StringArrayVar(&polygonVertices, "polygon", nil, "polygon vertex (repeat, at least 3)")

	geometryCmd.AddCommand(circumcenterCmd)
	geometryCmd.AddCommand(centroidCmd)
	geometryCmd.AddCommand(midpointCmd)
	geometryCmd.AddCommand(boundingBoxCmd)
	geometryCmd.AddCommand(triangleAreaCmd)
	geometryCmd.AddCommand(orthocenterCmd)
	geometryCmd.AddCommand(pointInPolygonCmd)
	rootCmd.AddCommand(geometryCmd)
}
