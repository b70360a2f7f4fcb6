// Package matrixio reads and writes whitespace-delimited text matrices
// with a "rows cols" header line followed by row-major values.
package matrixio

import (
	"bufio"
	"fmt"
	"os"
)

// LoadInt reads an integer matrix, such as a cluster partition.
func LoadInt(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	rows, cols, err := readHeader(r, path)
	if err != nil {
		return nil, err
	}

	m := make([][]int, rows)
	for i := 0; i < rows; i++ {
		m[i] = make([]int, cols)
		for j := 0; j < cols; j++ {
			if _, err := fmt.Fscan(r, &m[i][j]); err != nil {
				return nil, fmt.Errorf("matrixio: %s: value (%d, %d): %w", path, i, j, err)
			}
		}
	}
	return m, nil
}

// LoadFloat reads a float matrix, such as a saved angle checkpoint.
func LoadFloat(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	rows, cols, err := readHeader(r, path)
	if err != nil {
		return nil, err
	}

	m := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		m[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			if _, err := fmt.Fscan(r, &m[i][j]); err != nil {
				return nil, fmt.Errorf("matrixio: %s: value (%d, %d): %w", path, i, j, err)
			}
		}
	}
	return m, nil
}

// SaveFloat writes a float matrix with its dimension header.
func SaveFloat(path string, m [][]float64) error {
	if len(m) == 0 || len(m[0]) == 0 {
		return fmt.Errorf("matrixio: refusing to save empty matrix to %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matrixio: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d %d\n", len(m), len(m[0]))
	for _, row := range m {
		for _, v := range row {
			fmt.Fprintf(w, "%g ", v)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("matrixio: %w", err)
	}
	return nil
}

func readHeader(r *bufio.Reader, path string) (rows, cols int, err error) {
	if _, err := fmt.Fscan(r, &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("matrixio: %s: header: %w", path, err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("matrixio: %s: invalid dimensions %dx%d", path, rows, cols)
	}
	return rows, cols, nil
}
