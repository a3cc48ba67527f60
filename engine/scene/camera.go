package scene

import "github.com/spaghettifunk/prisma/engine/math"

/**
 * @brief The scene camera: a position and an Euler rotation, both in world
 * units. The pipeline currently consumes only the rotation's pitch and roll;
 * the position is stored for callers but not yet applied to the transform
 * stage.
 */
type Camera struct {
	Position math.Vector
	Rotation math.Vector
}

func NewCamera() *Camera {
	return &Camera{
		Position: math.NewVec3Zero(),
		Rotation: math.NewVec3Zero(),
	}
}

func (c *Camera) SetPosition(x, y, z float64) {
	c.Position = math.NewVec3(x, y, z)
}

func (c *Camera) SetRotation(x, y, z float64) {
	c.Rotation = math.NewVec3(x, y, z)
}

// Reset returns the camera to the origin with no rotation.
func (c *Camera) Reset() {
	c.Position = math.NewVec3Zero()
	c.Rotation = math.NewVec3Zero()
}
