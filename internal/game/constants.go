package game

const (
	// WorldSize is the width and height of the square arena
	WorldSize = 1000.0

	// SpawnWidth and SpawnHeight bound where new players appear
	SpawnWidth  = 800.0
	SpawnHeight = 600.0

	// InitialSize is the radius of a freshly spawned player
	InitialSize = 20.0

	// FoodTarget is the number of food items kept in the arena
	FoodTarget = 50

	// FoodGrowth is the size gained per food item eaten
	FoodGrowth = 2.0

	// MoveStep is the distance a player travels per movement intent
	MoveStep = 3.0

	// ArrivalDistance is how close to the target a player must be to stop moving
	ArrivalDistance = 1.0

	// OverlapMargin is subtracted from the summed radii before two players touch
	OverlapMargin = 5.0

	// EatRatio is how many times larger a player must be to eat another
	EatRatio = 1.2

	// ClientBufferSize is the buffer size for per-client message channels
	ClientBufferSize = 64
)
