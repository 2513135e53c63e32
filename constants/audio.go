package constants

import "time"

// Audio output
const (
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Miss buzz
const (
	ErrorSoundDuration = 80 * time.Millisecond
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 20 * time.Millisecond
)

// Obstacle bell
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Kick whoosh
const (
	WhooshSoundDuration = 120 * time.Millisecond
	WhooshSoundAttack   = 40 * time.Millisecond
	WhooshSoundRelease  = 80 * time.Millisecond
)

// Goal chime
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Save thud
const (
	ThudSoundDuration = 150 * time.Millisecond
	ThudSoundAttack   = 2 * time.Millisecond
	ThudSoundRelease  = 120 * time.Millisecond
)

// Game over sweep
const (
	GameOverSoundDuration = 900 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 600 * time.Millisecond
)
