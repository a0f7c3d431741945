package raster

import "fmt"

// Grid is a single raster band stored as a flat row-major array with
// per-pixel validity. Invalid pixels are excluded from statistics and
// rendered as transparent.
type Grid struct {
	Width  int
	Height int
	Values []float64
	Valid  []bool
}

// NewGrid creates a grid with every pixel marked valid and zero-valued.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	size := width * height
	grid := &Grid{
		Width:  width,
		Height: height,
		Values: make([]float64, size),
		Valid:  make([]bool, size),
	}
	for i := range grid.Valid {
		grid.Valid[i] = true
	}
	return grid, nil
}

// FromValues wraps an existing row-major array as a fully valid grid.
func FromValues(width, height int, values []float64) (*Grid, error) {
	if len(values) != width*height {
		return nil, fmt.Errorf("expected %d values for a %dx%d grid, got %d", width*height, width, height, len(values))
	}
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	copy(grid.Values, values)
	return grid, nil
}

func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

func (g *Grid) At(x, y int) float64 {
	return g.Values[g.Index(x, y)]
}

func (g *Grid) IsValid(x, y int) bool {
	return g.Valid[g.Index(x, y)]
}

func (g *Grid) Set(x, y int, value float64) {
	g.Values[g.Index(x, y)] = value
}

// SetInvalid masks a pixel out of every downstream aggregate.
func (g *Grid) SetInvalid(x, y int) {
	g.Valid[g.Index(x, y)] = false
}

// ValidCount returns the number of pixels carrying usable values.
func (g *Grid) ValidCount() int {
	count := 0
	for _, v := range g.Valid {
		if v {
			count++
		}
	}
	return count
}

// Raster is a decoded image: its bands plus the georeferencing read from the
// file. Bands keep GDAL's 1-based numbering through the Band accessor.
type Raster struct {
	Path          string
	Width         int
	Height        int
	Bands         []*Grid
	GeoTransform  [6]float64
	Georeferenced bool
	Projection    string
}

func (r *Raster) BandCount() int {
	return len(r.Bands)
}

// Band returns the n-th band, starting at 1.
func (r *Raster) Band(n int) (*Grid, error) {
	if n < 1 || n > len(r.Bands) {
		return nil, fmt.Errorf("band %d out of range, image has %d bands", n, len(r.Bands))
	}
	return r.Bands[n-1], nil
}

// Bounds returns the georeferenced extent as xMin, yMin, xMax, yMax.
func (r *Raster) Bounds() (float64, float64, float64, float64, error) {
	if !r.Georeferenced {
		return 0, 0, 0, 0, fmt.Errorf("image %s carries no georeferencing", r.Path)
	}
	gt := r.GeoTransform
	xMin := gt[0]
	yMax := gt[3]
	xMax := xMin + gt[1]*float64(r.Width)
	yMin := yMax + gt[5]*float64(r.Height)
	if yMin > yMax {
		yMin, yMax = yMax, yMin
	}
	return xMin, yMin, xMax, yMax, nil
}
