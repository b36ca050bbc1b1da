package core

// Sound identifies a fire-and-forget audio cue.
type Sound int

const (
	SoundNone     Sound = iota
	SoundHit            // A projectile struck a threat
	SoundCollect        // A power-up was collected
	SoundFire           // The player fired
	SoundGameOver       // The session ended
)

// String returns a human-readable name for the cue.
func (s Sound) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundCollect:
		return "collect"
	case SoundFire:
		return "fire"
	case SoundGameOver:
		return "gameover"
	default:
		return "none"
	}
}

// Sounds lists every playable cue.
var Sounds = []Sound{SoundHit, SoundCollect, SoundFire, SoundGameOver}
