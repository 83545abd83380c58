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

package spread

import "math"

// DirectionalSlopeFactor computes the slope-effect multiplier for one ray
// direction: up to 2.0 upslope (ST-X-3 1992, capped per Butler et al. 2007),
// 1.0 on flat or cross-slope ground, down to 0.7 downslope (Anderson 1983).
func DirectionalSlopeFactor(slopePercent, aspectDeg, spreadDirectionDeg float64) float64 {
	if slopePercent < 1.0 {
		return 1.0
	}

	angleDiff := math.Abs(spreadDirectionDeg - aspectDeg)
	if angleDiff > 180.0 {
		angleDiff = 360.0 - angleDiff
	}
	cosAngle := math.Cos(radians(angleDiff))

	sfMax := math.Min(math.Exp(3.533*math.Pow(slopePercent/100.0, 1.2)), 2.0)

	if cosAngle > 0 {
		return 1.0 + (sfMax-1.0)*cosAngle
	}
	const downslopeFactor = 0.7
	return 1.0 + (downslopeFactor-1.0)*math.Abs(cosAngle)
}
