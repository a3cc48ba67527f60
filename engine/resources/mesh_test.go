package resources

import (
	m "math"
	"testing"

	"github.com/spaghettifunk/prisma/engine/math"
)

func newTestFrame(width, height int) *Frame {
	return &Frame{
		CameraRotation: math.NewVec3Zero(),
		Projection:     math.NewIdentity(4),
		Width:          width,
		Height:         height,
	}
}

// Winding order puts the face normal at -z so the triangle survives culling.
const frontFacing = "v 0 0 0\nv 0 1 0\nv 1 0 0\nf 1 2 3\nc 120 50 50"

// Same triangle wound the other way; its normal points at +z.
const backFacing = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\nc 120 50 50"

func TestProcessKeepsFrontFaces(t *testing.T) {
	mesh, err := NewMesh(frontFacing)
	if err != nil {
		t.Fatal(err)
	}
	frame := newTestFrame(2, 2)
	if err := mesh.Process(frame); err != nil {
		t.Fatal(err)
	}
	if len(frame.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(frame.Records))
	}
}

func TestProcessCullsBackFaces(t *testing.T) {
	mesh, err := NewMesh(backFacing)
	if err != nil {
		t.Fatal(err)
	}
	frame := newTestFrame(2, 2)
	if err := mesh.Process(frame); err != nil {
		t.Fatal(err)
	}
	if len(frame.Records) != 0 {
		t.Fatalf("back-facing triangle not culled: %d records", len(frame.Records))
	}
}

func TestProcessViewportMapping(t *testing.T) {
	mesh, err := NewMesh(frontFacing)
	if err != nil {
		t.Fatal(err)
	}
	// Identity projection with a 2x2 viewport maps x to x+1 and y to y+1.
	frame := newTestFrame(2, 2)
	if err := mesh.Process(frame); err != nil {
		t.Fatal(err)
	}
	got := frame.Records[0].Vertices
	want := [3][2]float64{{1, 1}, {1, 2}, {2, 1}}
	for i, w := range want {
		if m.Abs(got[i].X-w[0]) > 1e-12 || m.Abs(got[i].Y-w[1]) > 1e-12 {
			t.Errorf("vertex %d = (%v, %v), want (%v, %v)", i, got[i].X, got[i].Y, w[0], w[1])
		}
	}
}

func TestProcessTransformOrderIsScaleTranslateRotate(t *testing.T) {
	// One front-facing triangle with a distinguished vertex at (1, 0, 0).
	// The face lies in the xy plane, so pitch(0) x roll keeps its normal
	// at -z and it survives culling.
	mesh, err := NewMesh("v 1 0 0\nv 1 1 0\nv 2 0 0\nf 1 2 3")
	if err != nil {
		t.Fatal(err)
	}
	mesh.SetScale(2, 2, 2)
	mesh.SetPosition(1, 0, 0)
	mesh.SetRotation(0, 0, m.Pi/2)

	frame := newTestFrame(2, 2)
	if err := mesh.Process(frame); err != nil {
		t.Fatal(err)
	}
	if len(frame.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(frame.Records))
	}
	// Scale: (2,0,0); translate: (3,0,0); roll 90°: (0,3,0).
	// Viewport then maps to ((0+1)*1, (3+1)*1) = (1, 4).
	// Rotating before translating would land on (1,2,0) and paint at (2, 3).
	v := frame.Records[0].Vertices[0]
	if m.Abs(v.X-1) > 1e-9 || m.Abs(v.Y-4) > 1e-9 {
		t.Errorf("distinguished vertex = (%v, %v), want (1, 4)", v.X, v.Y)
	}
}

func TestProcessAverageZIsPreProjection(t *testing.T) {
	mesh, err := NewMesh("v 0 0 2\nv 0 1 3\nv 1 0 4\nf 1 2 3")
	if err != nil {
		t.Fatal(err)
	}
	// A projection that rescales z must not affect AverageZ.
	frame := newTestFrame(2, 2)
	frame.Projection = math.NewDiagonal(4, 1, 1, 0.001, 1)
	if err := mesh.Process(frame); err != nil {
		t.Fatal(err)
	}
	if len(frame.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(frame.Records))
	}
	if got := frame.Records[0].AverageZ; m.Abs(got-3) > 1e-12 {
		t.Errorf("AverageZ = %v, want 3", got)
	}
}

func TestProcessRunsUpdateHookFirst(t *testing.T) {
	mesh, err := NewMesh(backFacing)
	if err != nil {
		t.Fatal(err)
	}
	called := false
	mesh.OnUpdate = func(m *Mesh) {
		called = true
		// Flip the mesh so the former back face now faces the camera.
		m.SetRotation(math.K_PI, 0, 0)
	}
	frame := newTestFrame(2, 2)
	if err := mesh.Process(frame); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("OnUpdate hook not invoked")
	}
	if len(frame.Records) != 1 {
		t.Fatalf("hook mutation ignored: %d records", len(frame.Records))
	}
}

func TestProcessCombinedRotationIncludesCamera(t *testing.T) {
	mesh, err := NewMesh(frontFacing)
	if err != nil {
		t.Fatal(err)
	}
	// Pitch the camera a half turn: the front face becomes a back face.
	frame := newTestFrame(2, 2)
	frame.CameraRotation = math.NewVec3(math.K_PI, 0, 0)
	if err := mesh.Process(frame); err != nil {
		t.Fatal(err)
	}
	if len(frame.Records) != 0 {
		t.Fatalf("camera rotation not applied: %d records", len(frame.Records))
	}
}

func TestUpdateGeometryRebuildsWholesale(t *testing.T) {
	mesh, err := NewMesh(frontFacing)
	if err != nil {
		t.Fatal(err)
	}
	mesh.Vertices = append(mesh.Vertices, math.NewVec3(0, 0, 1))
	mesh.Faces = append(mesh.Faces, [3]int{4, 2, 3})
	if err := mesh.UpdateGeometry(); err != nil {
		t.Fatal(err)
	}
	if len(mesh.Triangles) != 2 {
		t.Fatalf("got %d triangles, want 2", len(mesh.Triangles))
	}
}

func TestProcessRejectsStaleGeometry(t *testing.T) {
	mesh, err := NewMesh(frontFacing)
	if err != nil {
		t.Fatal(err)
	}
	mesh.Faces = append(mesh.Faces, [3]int{1, 2, 3})
	if err := mesh.Process(newTestFrame(2, 2)); err == nil {
		t.Fatal("expected an error for stale geometry")
	}
}

func TestReloadKeepsTransformState(t *testing.T) {
	mesh, err := NewMesh(frontFacing)
	if err != nil {
		t.Fatal(err)
	}
	mesh.SetPosition(1, 2, 3)
	if err := mesh.Reload(backFacing); err != nil {
		t.Fatal(err)
	}
	if mesh.Position.X != 1 || mesh.Position.Y != 2 || mesh.Position.Z != 3 {
		t.Errorf("position lost on reload: %+v", mesh.Position)
	}
}
