package assets

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/prisma/engine/core"
	"github.com/spaghettifunk/prisma/engine/resources"
)

// MeshEntry tracks one watched mesh source file.
type MeshEntry struct {
	Path       string
	Mesh       *resources.Mesh
	LastLoaded time.Time
}

// Manager loads mesh source files and hot-reloads them when they change on
// disk. Reloads are not applied from the watcher goroutine: changed paths
// queue up and the host drains them between frames with Drain, so mesh
// mutation never races an in-flight render.
type Manager struct {
	mutex  sync.RWMutex
	meshes map[string]*MeshEntry

	fsnotify *fsnotify.Watcher
	pending  chan string
	done     chan struct{}
	isClosed bool
}

func NewManager() (*Manager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	m := &Manager{
		meshes:   make(map[string]*MeshEntry),
		fsnotify: fsWatch,
		pending:  make(chan string, 64),
		done:     make(chan struct{}),
	}
	go m.start()
	return m, nil
}

// LoadMesh reads and parses a mesh source file.
func (am *Manager) LoadMesh(path string) (*resources.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return resources.NewMesh(string(data))
}

// Watch registers a mesh for hot reload whenever its source file is written.
// The file's directory is watched so editors that replace the file on save
// are still caught.
func (am *Manager) Watch(path string, mesh *resources.Mesh) error {
	if am.isClosed {
		return errors.New("asset manager already closed")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	am.mutex.Lock()
	am.meshes[abs] = &MeshEntry{
		Path:       abs,
		Mesh:       mesh,
		LastLoaded: time.Now(),
	}
	am.mutex.Unlock()

	return am.fsnotify.Add(filepath.Dir(abs))
}

// Drain applies all queued reloads. Call it once per frame, between renders.
func (am *Manager) Drain() {
	for {
		select {
		case path := <-am.pending:
			am.reload(path)
		default:
			return
		}
	}
}

func (am *Manager) start() {
	for {
		select {
		case e := <-am.fsnotify.Events:
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			abs, err := filepath.Abs(e.Name)
			if err != nil {
				continue
			}
			am.mutex.RLock()
			_, watched := am.meshes[abs]
			am.mutex.RUnlock()
			if watched {
				select {
				case am.pending <- abs:
				default:
					// Queue full: a reload for this path is already
					// pending, dropping the duplicate is fine.
				}
			}

		case e := <-am.fsnotify.Errors:
			if e != nil {
				core.LogError("asset watcher: %v", e)
			}

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

// reload re-parses one mesh source and swaps the geometry in place. Failures
// keep the previous geometry and only log, so a bad save does not tear down
// the frame loop.
func (am *Manager) reload(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	entry, ok := am.meshes[path]
	if !ok {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		core.LogError("reloading '%s': %v", path, err)
		return
	}
	if err := entry.Mesh.Reload(string(data)); err != nil {
		core.LogError("reloading '%s': %v", path, err)
		return
	}
	entry.LastLoaded = time.Now()
	core.LogInfo("reloaded mesh '%s'", path)
}

func (am *Manager) Close() error {
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	close(am.done)
	return nil
}
