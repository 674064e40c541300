package parameter

// Generated oval tracks
const (
	// TrackWallThickness is the width of the wall band around both road edges
	TrackWallThickness = 8

	// TrackFinishWidth is the finish line strip width across the road
	TrackFinishWidth = 6

	// TrackWaypointCount is the number of AI waypoints sampled on the road centerline
	TrackWaypointCount = 20

	// TrackStartGap is the distance from the finish line to the car start centers
	TrackStartGap = 24.0

	// TrackLaneOffset separates the two human starting lanes from the centerline
	TrackLaneOffset = 25.0
)
