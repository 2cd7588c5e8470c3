package beatlane

// Camera maps battle world space onto the screen.
//
// World y points up, screen y points down. The camera keeps its whole
// visible region on screen, so world distances stretch with the window.
type Camera struct {
	// half width/height of visible world in world units
	HalfW, HalfH float64
	// center of the camera in world units
	X, Y float64
}

func (c Camera) ToScreen(screenW, screenH float64, p FPoint) FPoint {
	return FPoint{
		X: (p.X-c.X)/(2*c.HalfW)*screenW + screenW*0.5,
		Y: screenH*0.5 - (p.Y-c.Y)/(2*c.HalfH)*screenH,
	}
}

func (c Camera) ToWorld(screenW, screenH float64, p FPoint) FPoint {
	return FPoint{
		X: (p.X-screenW*0.5)/screenW*(2*c.HalfW) + c.X,
		Y: (screenH*0.5-p.Y)/screenH*(2*c.HalfH) + c.Y,
	}
}

// ScaleX is how many screen pixels one world unit spans horizontally.
func (c Camera) ScaleX(screenW float64) float64 {
	return screenW / (2 * c.HalfW)
}

// ScaleY is how many screen pixels one world unit spans vertically.
func (c Camera) ScaleY(screenH float64) float64 {
	return screenH / (2 * c.HalfH)
}
