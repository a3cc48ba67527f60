package resources

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/prisma/engine/canvas"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/math"
)

// RenderFlags control how a mesh's triangles are painted. WireframeColor,
// when set, overrides the face color for stroking only.
type RenderFlags struct {
	ShowVertices   bool
	ShowWireframe  bool
	Fill           bool
	WireframeColor *canvas.HSLA
}

// Triangle is a derived render primitive: three 3D vertices and the face
// color. Triangles are rebuilt wholesale by UpdateGeometry, never mutated
// piecemeal.
type Triangle struct {
	Vertices [3]math.Vector
	Color    canvas.HSLA
}

// PaintRecord is the transient per-triangle structure queued for the paint
// stage: viewport-space vertices, the pre-projection average depth used for
// painter's-algorithm ordering, the color and the owning mesh's flags.
type PaintRecord struct {
	Vertices [3]math.Vector
	AverageZ float64
	Color    canvas.HSLA
	Flags    RenderFlags
}

// Frame carries the scene state a mesh needs for one Process pass and
// collects the paint records it produces.
type Frame struct {
	CameraRotation math.Vector
	Projection     math.Matrix
	Width, Height  int
	Records        []PaintRecord
}

/**
 * @brief A mesh: parsed vertex, face and color data, the triangle list
 * derived from them, per-frame world-transform state and render flags.
 * After editing Vertices, Faces or FaceColors directly, UpdateGeometry must
 * be called; partial updates are not supported.
 */
type Mesh struct {
	ID uuid.UUID

	Vertices   []math.Vector
	Faces      [][3]int // 1-based indices into Vertices
	FaceColors []canvas.HSLA
	Triangles  []Triangle

	Position math.Vector
	Rotation math.Vector
	Scale    math.Vector

	Flags RenderFlags

	// OnUpdate, when set, runs once at the start of every Process call,
	// before the transform stage.
	OnUpdate func(*Mesh)
}

// NewMesh parses the mesh source text and derives the triangle list.
func NewMesh(source string) (*Mesh, error) {
	m := &Mesh{
		ID:       uuid.New(),
		Position: math.NewVec3Zero(),
		Rotation: math.NewVec3Zero(),
		Scale:    math.NewVec3One(),
		Flags:    RenderFlags{Fill: true},
	}
	if err := m.Reload(source); err != nil {
		return nil, err
	}
	return m, nil
}

// Reload replaces the mesh's raw geometry from source text and re-derives
// the triangle list. The transform state and flags are kept.
func (m *Mesh) Reload(source string) error {
	ms, err := parseMeshSource(source)
	if err != nil {
		core.LogError("mesh %s: %v", m.ID, err)
		return err
	}
	m.Vertices = ms.vertices
	m.Faces = ms.faces
	m.FaceColors = ms.colors
	return m.UpdateGeometry()
}

// UpdateGeometry rebuilds the triangle list from the vertex, face and color
// lists. It must be called after any direct edit to those lists.
func (m *Mesh) UpdateGeometry() error {
	triangles := make([]Triangle, 0, len(m.Faces))
	for i, face := range m.Faces {
		var tri Triangle
		for j, idx := range face {
			if idx < 1 || idx > len(m.Vertices) {
				m.Triangles = nil
				return &core.DataError{Msg: fmt.Sprintf("face %d references vertex %d, mesh has %d", i+1, idx, len(m.Vertices))}
			}
			tri.Vertices[j] = m.Vertices[idx-1]
		}
		if i < len(m.FaceColors) {
			tri.Color = m.FaceColors[i]
		} else {
			tri.Color = canvas.HSLA{H: 0, S: 0, L: 100, A: 1}
		}
		triangles = append(triangles, tri)
	}
	m.Triangles = triangles
	return nil
}

func (m *Mesh) SetPosition(x, y, z float64) {
	m.Position = math.NewVec3(x, y, z)
}

func (m *Mesh) SetRotation(x, y, z float64) {
	m.Rotation = math.NewVec3(x, y, z)
}

func (m *Mesh) SetScale(x, y, z float64) {
	m.Scale = math.NewVec3(x, y, z)
}

/**
 * @brief Runs the per-object stage of the frame pipeline and appends the
 * surviving triangles to the frame's record list.
 *
 * The combined rotation is pitch(mesh.x + camera.x) * roll(mesh.z +
 * camera.z); rotation about the vertical axis is not applied. Each vertex is
 * scaled, then translated, then rotated, in that fixed order. A triangle is
 * kept only when its transformed face normal points toward the camera
 * (negative z); survivors are pushed through the projection matrix and
 * mapped to viewport pixels. AverageZ is the mean camera-space depth before
 * projection.
 */
func (m *Mesh) Process(frame *Frame) error {
	if m.OnUpdate != nil {
		m.OnUpdate(m)
	}

	if len(m.Triangles) != len(m.Faces) {
		return &core.DataError{Msg: fmt.Sprintf("mesh %s: geometry out of date, call UpdateGeometry", m.ID)}
	}

	pitch := math.NewPitchRotation(m.Rotation.X + frame.CameraRotation.X)
	roll := math.NewRollRotation(m.Rotation.Z + frame.CameraRotation.Z)
	rotation := pitch.Mul(roll)

	halfW := float64(frame.Width) / 2
	halfH := float64(frame.Height) / 2

	for _, tri := range m.Triangles {
		var world [3]math.Vector
		for i, v := range tri.Vertices {
			v = v.Mul(m.Scale)
			v = v.Add(m.Position)
			world[i] = rotation.MulVec(v)
		}

		normal := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
		normal.Normalize()
		if normal.Z >= 0 {
			continue
		}

		var projected [3]math.Vector
		for i, v := range world {
			p := frame.Projection.MulVec(v)
			p.X = (p.X + 1) * halfW
			p.Y = (p.Y + 1) * halfH
			projected[i] = p
		}

		frame.Records = append(frame.Records, PaintRecord{
			Vertices: projected,
			AverageZ: (world[0].Z + world[1].Z + world[2].Z) / 3,
			Color:    tri.Color,
			Flags:    m.Flags,
		})
	}
	return nil
}
