package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/penalty-shootout/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave, optionally gliding from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a constant-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch glides linearly from start to end
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	o := &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
	if wave == WaveNoise {
		o.noise = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq != o.freq && o.duration > 0 {
			freq += (o.endFreq - o.freq) * float64(o.position) / float64(o.duration)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	releaseStart   int
	totalSamples   int
}

// NewEnvelope shapes s over duration; sustain fills whatever attack and release leave
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		releaseStart:   att + sus,
		totalSamples:   total,
	}
}

func (e *envelope) gain() float64 {
	switch {
	case e.attackSamples > 0 && e.position < e.attackSamples:
		return float64(e.position) / float64(e.attackSamples)
	case e.releaseSamples > 0 && e.position >= e.releaseStart:
		return math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
	}
	return 1.0
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s at a linear volume; zero or below is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateErrorSound generates a low saw buzz for a missed shot
func CreateErrorSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(100.0, constants.ErrorSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.ErrorSoundDuration, constants.ErrorSoundAttack, constants.ErrorSoundRelease, rate)

	return newVolume(shaped, cfg.Volume(SoundError))
}

// CreateBellSound generates a ding for a destroyed obstacle
func CreateBellSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// A5 with an octave overtone
	fund := NewOscillator(880.0, constants.BellSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constants.BellSoundDuration, constants.BellSoundAttack, constants.BellSoundFundamentalRelease, rate)

	over := NewOscillator(1760.0, constants.BellSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constants.BellSoundDuration, constants.BellSoundAttack, constants.BellSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, cfg.Volume(SoundBell))
}

// CreateWhooshSound generates a short noise burst for a kick
func CreateWhooshSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.WhooshSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constants.WhooshSoundDuration, constants.WhooshSoundAttack, constants.WhooshSoundRelease, rate)

	return newVolume(shaped, cfg.Volume(SoundWhoosh))
}

// CreateCoinSound generates a rising two-note chime for a goal
func CreateCoinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := NewOscillator(987.77, constants.CoinSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.CoinSoundNote1Duration, constants.CoinSoundAttack, constants.CoinSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, constants.CoinSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.CoinSoundNote2Duration, constants.CoinSoundAttack, constants.CoinSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.Volume(SoundCoin))
}

// CreateThudSound generates a dull knock for keeper saves and wall bounces
func CreateThudSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewSweep(140, 60, constants.ThudSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(body, constants.ThudSoundDuration, constants.ThudSoundAttack, constants.ThudSoundRelease, rate)

	return newVolume(shaped, cfg.Volume(SoundThud))
}

// CreateGameOverSound generates a falling square sweep
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	sweep := NewSweep(440, 110, constants.GameOverSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(sweep, constants.GameOverSoundDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate)

	return newVolume(shaped, cfg.Volume(SoundGameOver))
}

// GetSoundEffect returns the streamer for soundType, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundError:
		return CreateErrorSound(cfg)
	case SoundBell:
		return CreateBellSound(cfg)
	case SoundWhoosh:
		return CreateWhooshSound(cfg)
	case SoundCoin:
		return CreateCoinSound(cfg)
	case SoundThud:
		return CreateThudSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
