package mathutil

// World axes. The renderer is Y-up.
var (
	AxisX  = Vec3{1, 0, 0}
	AxisY  = Vec3{0, 1, 0}
	AxisZ  = Vec3{0, 0, 1}
	Origin = Vec3{}
)
