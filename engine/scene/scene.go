package scene

import (
	"sort"

	"github.com/spaghettifunk/prisma/engine/canvas"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
	"github.com/spaghettifunk/prisma/engine/resources"
)

/**
 * @brief A scene owns the drawing surface, the orthographic projection, the
 * camera, its member meshes and the transient per-frame render list. The
 * render list is rebuilt from empty at the start of every Render call and
 * drained at the end; it never carries state across frames.
 *
 * Rendering is synchronous and single-threaded: no two Render calls on the
 * same scene may overlap, and meshes must only be mutated between frames.
 */
type Scene struct {
	surface    canvas.Surface
	projection math.Matrix
	objects    []*resources.Mesh
	records    []resources.PaintRecord

	Camera     *Camera
	Background *canvas.HSLA
}

// NewScene creates a scene painting on a software image surface of the
// given pixel dimensions.
func NewScene(width, height int) *Scene {
	return NewSceneOn(canvas.NewImage(width, height))
}

// NewSceneOn creates a scene painting on the supplied surface. The
// projection starts as the identity; call UpdateProjectionMatrix to set an
// orthographic view volume.
func NewSceneOn(surface canvas.Surface) *Scene {
	return &Scene{
		surface:    surface,
		projection: math.NewIdentity(4),
		Camera:     NewCamera(),
	}
}

func (s *Scene) Surface() canvas.Surface {
	return s.surface
}

func (s *Scene) Projection() math.Matrix {
	return s.projection
}

func (s *Scene) Objects() []*resources.Mesh {
	return s.objects
}

// Add appends a mesh to the scene. A nil mesh is a construction error and
// leaves the object list untouched.
func (s *Scene) Add(mesh *resources.Mesh) error {
	if mesh == nil {
		core.LogError("scene: %v", core.ErrNotAMesh)
		return core.ErrNotAMesh
	}
	s.objects = append(s.objects, mesh)
	return nil
}

// SetRotation sets the camera rotation in radians.
func (s *Scene) SetRotation(x, y, z float64) {
	s.Camera.SetRotation(x, y, z)
}

/**
 * @brief Rebuilds the projection from an orthographic view volume using the
 * standard OpenGL formula: a scale and translate per axis, with the z row
 * negated for the right-handed to clip-space mapping.
 */
func (s *Scene) UpdateProjectionMatrix(left, right, bottom, top, near, far float64) {
	p := math.NewIdentity(4)
	p.Data[0] = 2 / (right - left)
	p.Data[3] = -(right + left) / (right - left)
	p.Data[5] = 2 / (top - bottom)
	p.Data[7] = -(top + bottom) / (top - bottom)
	p.Data[10] = -2 / (far - near)
	p.Data[11] = -(far + near) / (far - near)
	s.projection = p
}

// Clear resets a surface region to the scene background, or to transparent
// when no background is set.
func (s *Scene) Clear(x, y, width, height int) {
	s.surface.Clear(x, y, width, height, s.Background)
}

/**
 * @brief Renders one frame: every mesh transforms, culls and projects its
 * triangles into the render list, the list is depth-sorted farthest first
 * (painter's algorithm; approximate by design, no per-pixel depth test) and
 * painted, and the list is drained. A failing mesh aborts the frame and the
 * error is surfaced.
 */
func (s *Scene) Render() error {
	s.records = s.records[:0]

	width, height := s.surface.Size()
	s.surface.Clear(0, 0, width, height, s.Background)

	frame := &resources.Frame{
		CameraRotation: s.Camera.Rotation,
		Projection:     s.projection,
		Width:          width,
		Height:         height,
		Records:        s.records,
	}
	for _, mesh := range s.objects {
		if err := mesh.Process(frame); err != nil {
			core.LogError("scene: processing mesh %s failed: %v", mesh.ID, err)
			s.records = s.records[:0]
			return err
		}
	}
	s.records = frame.Records

	sortRecords(s.records)
	for i := range s.records {
		s.paint(&s.records[i])
	}

	s.records = s.records[:0]
	return nil
}

// sortRecords orders paint records farthest first by average depth. The sort
// is stable so records at equal depth keep their insertion order.
func sortRecords(records []resources.PaintRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].AverageZ > records[j].AverageZ
	})
}

func (s *Scene) paint(rec *resources.PaintRecord) {
	if rec.Flags.ShowVertices {
		for _, v := range rec.Vertices {
			s.surface.Circle(v.X, v.Y, 3, rec.Color)
		}
	}

	s.surface.BeginPath()
	s.surface.MoveTo(rec.Vertices[0].X, rec.Vertices[0].Y)
	s.surface.LineTo(rec.Vertices[1].X, rec.Vertices[1].Y)
	s.surface.LineTo(rec.Vertices[2].X, rec.Vertices[2].Y)
	s.surface.ClosePath()

	if rec.Flags.Fill {
		s.surface.Fill(rec.Color)
	}
	if rec.Flags.ShowWireframe {
		stroke := rec.Color
		if rec.Flags.WireframeColor != nil {
			stroke = *rec.Flags.WireframeColor
		}
		s.surface.Stroke(stroke)
	}
}
