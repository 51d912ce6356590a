package mathutil

// Vec is a float64 vector.
type Vec = []float64

// Mat is a 2D float64 matrix stored as row-major [][]float64.
type Mat = [][]float64

// NewMatFill creates a rows x cols matrix filled with val.
func NewMatFill(rows, cols int, val float64) Mat {
	m := make(Mat, rows)
	data := make([]float64, rows*cols)
	for i := range m {
		m[i] = data[i*cols : (i+1)*cols]
		for j := range m[i] {
			m[i][j] = val
		}
	}
	return m
}

// NewVecFill creates a vector of length n filled with val.
func NewVecFill(n int, val float64) Vec {
	v := make(Vec, n)
	for i := range v {
		v[i] = val
	}
	return v
}

// FlatMat is a rows x cols matrix backed by one contiguous slice, addressed
// by a computed stride. Useful when a caller wants a single owned buffer
// instead of a slice of slices (e.g. a large DTW cost matrix).
type FlatMat struct {
	Data  []float64
	Rows  int
	Cols  int
}

// NewFlatMatFill allocates a rows x cols FlatMat filled with val.
func NewFlatMatFill(rows, cols int, val float64) FlatMat {
	fm := FlatMat{Data: make([]float64, rows*cols), Rows: rows, Cols: cols}
	for i := range fm.Data {
		fm.Data[i] = val
	}
	return fm
}

// At returns the value at (i, j).
func (fm FlatMat) At(i, j int) float64 {
	return fm.Data[i*fm.Cols+j]
}

// Set stores val at (i, j).
func (fm FlatMat) Set(i, j int, val float64) {
	fm.Data[i*fm.Cols+j] = val
}
