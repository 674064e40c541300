package parameter

// Push-out-and-slide resolution
const (
	// PushOutMaxSteps is the number of increasing displacements tried before reverting
	PushOutMaxSteps = 6

	// PushOutVelocityFactor is applied to velocity after every push-out resolution
	PushOutVelocityFactor = 0.5

	// PushOutCenterEpsilon is the distance under which the overlap is treated as the silhouette center
	PushOutCenterEpsilon = 1e-6
)
