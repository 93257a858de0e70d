package heightmap_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// terrain repeats the sample letters into a rows×cols grid with S and E in
// opposite corners.
func terrain(rows, cols int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	var sb strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			switch {
			case x == 0 && y == 0:
				sb.WriteByte('S')
			case x == cols-1 && y == rows-1:
				sb.WriteByte('E')
			default:
				sb.WriteByte(letters[(x+y)%len(letters)])
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func BenchmarkParse_41x161(b *testing.B) {
	input := terrain(41, 161)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := heightmap.Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkShortestFromStart_41x161(b *testing.B) {
	hm, err := heightmap.Parse(terrain(41, 161))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = hm.ShortestFromStart()
	}
}
