package testbed

import (
	"fmt"
	"path/filepath"
	"time"

	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/prisma/engine"
	"github.com/spaghettifunk/prisma/engine/assets"
	"github.com/spaghettifunk/prisma/engine/canvas"
	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/resources"
	"github.com/spaghettifunk/prisma/engine/scene"
)

// TestGame is the demo application: a scene of spinning meshes loaded from
// the assets directory, hot-reloaded on save, with an optional HUD.
type TestGame struct {
	Config *engine.ApplicationConfig
	Scene  *scene.Scene
	Assets *assets.Manager

	state *gameState
}

type gameState struct {
	meshes []*resources.Mesh
	font   *canvas.Font
}

func NewTestGame(cfg *engine.ApplicationConfig) (*TestGame, error) {
	rand.Seed(uint64(time.Now().UnixNano()))

	sc := scene.NewScene(cfg.StartWidth, cfg.StartHeight)
	o := cfg.Ortho
	sc.UpdateProjectionMatrix(o.Left, o.Right, o.Bottom, o.Top, o.Near, o.Far)
	if len(cfg.Background) >= 4 {
		sc.Background = &canvas.HSLA{
			H: cfg.Background[0],
			S: cfg.Background[1],
			L: cfg.Background[2],
			A: cfg.Background[3],
		}
	}

	am, err := assets.NewManager()
	if err != nil {
		return nil, err
	}

	state := &gameState{}
	if cfg.FontPath != "" {
		font, err := canvas.LoadFont(cfg.FontPath)
		if err != nil {
			core.LogWarn("HUD font unavailable: %v", err)
		} else {
			state.font = font
		}
	}

	for _, rel := range cfg.Meshes {
		path := filepath.Join(cfg.AssetsDir, rel)
		mesh, err := am.LoadMesh(path)
		if err != nil {
			core.LogError("loading mesh '%s': %v", path, err)
			return nil, err
		}
		decorate(mesh)
		if err := sc.Add(mesh); err != nil {
			return nil, err
		}
		if err := am.Watch(path, mesh); err != nil {
			core.LogWarn("hot reload unavailable for '%s': %v", path, err)
		}
		state.meshes = append(state.meshes, mesh)
	}

	if len(state.meshes) == 0 {
		core.LogInfo("no meshes configured, using the built-in cube")
		mesh, err := resources.NewMesh(cubeSource)
		if err != nil {
			return nil, err
		}
		decorate(mesh)
		if err := sc.Add(mesh); err != nil {
			return nil, err
		}
		state.meshes = append(state.meshes, mesh)
	}

	return &TestGame{
		Config: cfg,
		Scene:  sc,
		Assets: am,
		state:  state,
	}, nil
}

// decorate gives a mesh a random spin and wireframe accent so multiple
// meshes stay distinguishable.
func decorate(mesh *resources.Mesh) {
	pitchRate := 0.004 + rand.Float64()*0.008
	rollRate := 0.002 + rand.Float64()*0.006
	mesh.Flags.ShowWireframe = true
	mesh.Flags.WireframeColor = &canvas.HSLA{
		H: rand.Float64() * 360,
		S: 80,
		L: 70,
		A: 1,
	}
	mesh.OnUpdate = func(m *resources.Mesh) {
		m.Rotation.X += pitchRate
		m.Rotation.Z += rollRate
	}
}

// Frame runs once per tick before the scene renders.
func (g *TestGame) Frame(delta float64) error {
	return nil
}

// HUD draws the frame statistics overlay when a font is configured.
func (g *TestGame) HUD(img *canvas.Image, fps, frameMS float64) {
	if g.state.font == nil {
		return
	}
	g.state.font.DrawText(img.RGBA(), 8, 8, fmt.Sprintf("%.0f fps / %.2f ms", fps, frameMS))
}

func (g *TestGame) Shutdown() error {
	return g.Assets.Close()
}

// cubeSource is the fallback mesh: a unit cube with a distinct hue per face,
// in the renderer's text format.
const cubeSource = `v -0.5 -0.5 -0.5
v 0.5 -0.5 -0.5
v 0.5 0.5 -0.5
v -0.5 0.5 -0.5
v -0.5 -0.5 0.5
v 0.5 -0.5 0.5
v 0.5 0.5 0.5
v -0.5 0.5 0.5

f 1 3 2
f 1 4 3
f 5 6 7
f 5 7 8
f 1 2 6
f 1 6 5
f 4 8 7
f 4 7 3
f 1 5 8
f 1 8 4
f 2 3 7
f 2 7 6

c 0 70 55
c 0 70 45
c 60 70 55
c 60 70 45
c 120 70 55
c 120 70 45
c 180 70 55
c 180 70 45
c 240 70 55
c 240 70 45
c 300 70 55
c 300 70 45
`
