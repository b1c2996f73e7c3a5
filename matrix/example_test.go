package matrix_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/eigenkit/matrix"
)

// ExampleEigenvects prints eigenvalues and eigenspaces of a rotation-like
// matrix with a complex conjugate pair.
func ExampleEigenvects() {
	a, _ := matrix.NewFromInts([][]int64{{1, -2}, {1, 1}})
	spaces, _ := matrix.Eigenvects(a)
	for _, s := range spaces {
		fmt.Printf("%s (x%d): %s\n", s.Value, s.Multiplicity, s.Vectors[0])
	}

	// Output:
	// 1 - sqrt(2)*I (x1): Matrix([[-sqrt(2)*I], [1]])
	// 1 + sqrt(2)*I (x1): Matrix([[sqrt(2)*I], [1]])
}

// ExampleParse reads whitespace-separated rows.
func ExampleParse() {
	m, err := matrix.Parse(strings.NewReader("2 1/2\n0 -1\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)
	fmt.Println(m.Pretty())

	// Output:
	// Matrix([[2, 1/2], [0, -1]])
	// Matrix([
	//     [2, 1/2],
	//     [0, -1],
	// ])
}

// ExampleCharPoly shows the characteristic polynomial in lambda.
func ExampleCharPoly() {
	a, _ := matrix.NewFromInts([][]int64{{1, -2}, {1, 1}})
	p, _ := matrix.CharPoly(a)
	fmt.Println(p.Format("lambda"))

	// Output:
	// lambda**2 - 2*lambda + 3
}
