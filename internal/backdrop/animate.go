package backdrop

import (
	"time"

	"github.com/Thegreatvegan/Qura/internal/frameloop"
)

// Play advances f by each tick's elapsed time and redraws it onto c. The
// returned func stops playback.
func Play(loop *frameloop.Loop, f *Field, c Canvas) (stop func()) {
	return loop.OnFrame(func(dt time.Duration) {
		f.Advance(dt)
		f.Draw(c)
	})
}
