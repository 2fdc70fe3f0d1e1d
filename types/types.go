// Package types holds the shared enumerations of the SWAN command grammar.
// Each enum is a typed string (or int) with a Validate method so malformed
// values are rejected at the deserialization boundary rather than at render
// time.
package types

import "fmt"

// GridOption identifies the physical quantity carried by an input grid.
type GridOption string

const (
	// GridBottom is the bathymetry grid.
	GridBottom GridOption = "bottom"

	// GridWaterLevel is the water level grid.
	GridWaterLevel GridOption = "wlevel"

	// GridCurrent is the two-component ambient current grid.
	GridCurrent GridOption = "current"

	// GridVelocityX is the x-component current grid.
	GridVelocityX GridOption = "vx"

	// GridVelocityY is the y-component current grid.
	GridVelocityY GridOption = "vy"

	// GridWind is the two-component wind grid.
	GridWind GridOption = "wind"

	// GridWindX is the x-component wind grid.
	GridWindX GridOption = "wx"

	// GridWindY is the y-component wind grid.
	GridWindY GridOption = "wy"

	// GridFriction is the bottom friction coefficient grid.
	GridFriction GridOption = "friction"

	// GridPlants is the vegetation density grid.
	GridPlants GridOption = "nplants"

	// GridTurbVisc is the turbulent viscosity grid.
	GridTurbVisc GridOption = "turbvisc"

	// GridMudLayer is the fluid mud layer thickness grid.
	GridMudLayer GridOption = "mudlayer"

	// GridIceConc is the sea ice concentration grid.
	GridIceConc GridOption = "aice"

	// GridIceThick is the sea ice thickness grid.
	GridIceThick GridOption = "hice"

	// GridSeaSwellHs is the sea-swell significant wave height grid.
	GridSeaSwellHs GridOption = "hss"

	// GridSeaSwellTp is the sea-swell peak period grid.
	GridSeaSwellTp GridOption = "tss"
)

var gridOptions = map[GridOption]bool{
	GridBottom: true, GridWaterLevel: true, GridCurrent: true,
	GridVelocityX: true, GridVelocityY: true, GridWind: true,
	GridWindX: true, GridWindY: true, GridFriction: true,
	GridPlants: true, GridTurbVisc: true, GridMudLayer: true,
	GridIceConc: true, GridIceThick: true, GridSeaSwellHs: true,
	GridSeaSwellTp: true,
}

// Validate reports whether the grid option is one of the known quantities.
func (g GridOption) Validate() error {
	if !gridOptions[g] {
		return fmt.Errorf("unknown input grid type %q", string(g))
	}
	return nil
}

// IDLA prescribes the order in which gridded values appear in an input file.
type IDLA int

// Validate rejects lay-out identifiers outside the SWAN range.
func (i IDLA) Validate() error {
	if i < 1 || i > 6 {
		return fmt.Errorf("idla must be in the range 1-6, got %d", int(i))
	}
	return nil
}

// BoundShape selects the parametric boundary spectrum shape.
type BoundShape string

const (
	// ShapeJonswap is the JONSWAP spectral shape.
	ShapeJonswap BoundShape = "jonswap"

	// ShapePM is the Pierson-Moskowitz spectral shape.
	ShapePM BoundShape = "pm"

	// ShapeGauss is the Gaussian-shaped frequency spectrum.
	ShapeGauss BoundShape = "gauss"

	// ShapeBin is a single frequency bin.
	ShapeBin BoundShape = "bin"

	// ShapeTMA is the TMA (depth-limited JONSWAP) shape.
	ShapeTMA BoundShape = "tma"
)

// Validate reports whether the shape is one of the known spectral shapes.
func (s BoundShape) Validate() error {
	switch s {
	case ShapeJonswap, ShapePM, ShapeGauss, ShapeBin, ShapeTMA:
		return nil
	}
	return fmt.Errorf("unknown boundary shape %q", string(s))
}

// Side names a boundary side of a regular or curvilinear grid.
type Side string

const (
	SideNorth     Side = "north"
	SideNorthWest Side = "nw"
	SideWest      Side = "west"
	SideSouthWest Side = "sw"
	SideSouth     Side = "south"
	SideSouthEast Side = "se"
	SideEast      Side = "east"
	SideNorthEast Side = "ne"
)

// Validate reports whether the side is one of the eight compass sides.
func (s Side) Validate() error {
	switch s {
	case SideNorth, SideNorthWest, SideWest, SideSouthWest,
		SideSouth, SideSouthEast, SideEast, SideNorthEast:
		return nil
	}
	return fmt.Errorf("unknown grid side %q", string(s))
}

// PhysicsOff names a physics process that the OFF command can deactivate.
type PhysicsOff string

const (
	OffWindGrowth PhysicsOff = "windgrowth"
	OffQuadrupl   PhysicsOff = "quadrupl"
	OffWcapping   PhysicsOff = "wcapping"
	OffBreaking   PhysicsOff = "breaking"
	OffRefrac     PhysicsOff = "refrac"
	OffFshift     PhysicsOff = "fshift"
	OffBndChk     PhysicsOff = "bndchk"
)

// Validate reports whether the process can be switched off.
func (p PhysicsOff) Validate() error {
	switch p {
	case OffWindGrowth, OffQuadrupl, OffWcapping, OffBreaking,
		OffRefrac, OffFshift, OffBndChk:
		return nil
	}
	return fmt.Errorf("unknown physics process %q", string(p))
}
