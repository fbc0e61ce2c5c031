package parameter

// Projectile
const (
	// ProjectileSpeed in units per second
	ProjectileSpeed = 125.0

	// ProjectileMaxWraps is the lifetime bound in edge crossings
	ProjectileMaxWraps = 5
)
