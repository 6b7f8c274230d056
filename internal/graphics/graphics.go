package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the host window. Zero Width/Height opens at the primary monitor's size.
type Window struct {
	Title      string
	Width      int
	Height     int
	FPS        int
	Background rl.Color
}

// Run opens the window and runs the main loop until it is closed. Each frame it calls
// update (input, camera), clears to the background and calls draw.
// The window is resizable; raylib resizes the viewport and onResize, if set, is told the new
// size. Sketch state is never touched by a resize.
func Run(w Window, update, draw func(), onResize func(width, height int)) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(w.FPS))

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() && onResize != nil {
			onResize(rl.GetScreenWidth(), rl.GetScreenHeight())
		}
		update()

		rl.BeginDrawing()
		rl.ClearBackground(w.Background)
		draw()
		rl.EndDrawing()
	}
}

