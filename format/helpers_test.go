// SPDX-License-Identifier: MIT

package format_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// mmGeneral is the 3x3 matrix
//
//	1  0  7
//	0  0  5.5
//	0 -2  0
const mmGeneral = `%%MatrixMarket matrix coordinate real general
% written by hand
3 3 4
1 1 1.0
2 3 5.5
3 2 -2
1 3 7
`

var mmGeneralRows = [][]float64{
	{1, 0, 7},
	{0, 0, 5.5},
	{0, -2, 0},
}

// csrSample and hbSample both hold
//
//	4 0 1
//	0 5 0
//	2 0 6
const csrSample = `% row pointers, columns, values
3 3 5
1 3 4 6
1 3 2 1 3
4 1 5 2 6
`

var sampleRows = [][]float64{
	{4, 0, 1},
	{0, 5, 0},
	{2, 0, 6},
}

// hbFile lays out a Harwell-Boeing file with fixed-width cards.
func hbFile(mxtype string, rows, cols int, ptr, ind []int, vals []float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-72s%-8s\n", "sample matrix", "SAMPLE")
	fmt.Fprintf(&b, "%14d%14d%14d%14d%14d\n", 3, 1, 1, 1, 0)
	fmt.Fprintf(&b, "%-3s%11s%14d%14d%14d%14d\n", mxtype, "", rows, cols, len(ind), 0)
	fmt.Fprintf(&b, "%-16s%-16s%-20s%-20s\n", "(4I5)", "(4I5)", "(3E16.8)", "(3E16.8)")
	writeCards(&b, 4, len(ptr), func(k int) string { return fmt.Sprintf("%5d", ptr[k]) })
	writeCards(&b, 4, len(ind), func(k int) string { return fmt.Sprintf("%5d", ind[k]) })
	writeCards(&b, 3, len(vals), func(k int) string { return fmt.Sprintf("%16.8E", vals[k]) })

	return b.String()
}

func writeCards(b *strings.Builder, perLine, n int, field func(int) string) {
	for k := 0; k < n; k++ {
		b.WriteString(field(k))
		if (k+1)%perLine == 0 || k == n-1 {
			b.WriteByte('\n')
		}
	}
}

func hbSample() string {
	return hbFile("RUA", 3, 3,
		[]int{1, 3, 4, 6},
		[]int{1, 3, 2, 1, 3},
		[]float64{4, 2, 5, 1, 6})
}

// writeFile stores content under dir/name and returns the full path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
