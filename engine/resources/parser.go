package resources

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spaghettifunk/prisma/engine/canvas"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
)

// meshSource is the parse result of the mesh text format: three lists whose
// i-th entries correspond to the i-th occurrence of their tag.
type meshSource struct {
	vertices []math.Vector
	faces    [][3]int
	colors   []canvas.HSLA
}

// parseMeshSource reads the line-oriented mesh format. Each line is blank or
// `<tag> <num> <num> <num>`: `v` for a vertex position, `f` for 1-based
// vertex indices of a triangle, `c` for a face color (hue, saturation,
// lightness and an optional alpha defaulting to 1). Tag order is irrelevant;
// unrecognized lines are ignored.
func parseMeshSource(source string) (*meshSource, error) {
	ms := &meshSource{}
	scanner := bufio.NewScanner(strings.NewReader(source))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			nums, err := parseFloats(fields[1:], 3, lineNo)
			if err != nil {
				return nil, err
			}
			ms.vertices = append(ms.vertices, math.NewVec3(nums[0], nums[1], nums[2]))
		case "f":
			if len(fields) < 4 {
				return nil, &core.DataError{Line: lineNo, Msg: "face needs 3 vertex indices"}
			}
			var face [3]int
			for i := 0; i < 3; i++ {
				idx, err := strconv.Atoi(fields[1+i])
				if err != nil {
					return nil, &core.DataError{Line: lineNo, Msg: fmt.Sprintf("invalid face index '%s'", fields[1+i])}
				}
				face[i] = idx
			}
			ms.faces = append(ms.faces, face)
		case "c":
			nums, err := parseFloats(fields[1:], 3, lineNo)
			if err != nil {
				return nil, err
			}
			alpha := 1.0
			if len(fields) >= 5 {
				alpha, err = strconv.ParseFloat(fields[4], 64)
				if err != nil {
					return nil, &core.DataError{Line: lineNo, Msg: fmt.Sprintf("invalid alpha '%s'", fields[4])}
				}
			}
			ms.colors = append(ms.colors, canvas.HSLA{H: nums[0], S: nums[1], L: nums[2], A: alpha})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ms, nil
}

func parseFloats(fields []string, count, lineNo int) ([]float64, error) {
	if len(fields) < count {
		return nil, &core.DataError{Line: lineNo, Msg: fmt.Sprintf("expected %d numeric fields, found %d", count, len(fields))}
	}
	out := make([]float64, count)
	for i := 0; i < count; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, &core.DataError{Line: lineNo, Msg: fmt.Sprintf("invalid number '%s'", fields[i])}
		}
		out[i] = v
	}
	return out, nil
}
