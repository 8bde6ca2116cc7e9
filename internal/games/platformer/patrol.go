package platformer

// Patrol keeps a hazard on the platform it stands on: once its leading edge
// passes the platform's edge in the direction of travel, the horizontal
// velocity is inverted. It is only consulted for landings on a platform, so
// a hazard in free fall keeps its direction.
func Patrol(hazard, platform *Entity) {
	h := hazard.Body.AABB()
	p := platform.Body.AABB()

	v := hazard.Body.Vel.X
	if (v > 0 && h.Right() > p.Right()) || (v < 0 && h.Left() < p.Left()) {
		hazard.Body.Vel.X = -v
	}
}
