package parameter

// WaypointArrivalRadius is the distance in pixels below which the AI advances to the next waypoint
const WaypointArrivalRadius = 20.0
