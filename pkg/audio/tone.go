package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// Format describes interleaved signed 16-bit little-endian PCM
type Format struct {
	SampleRate int
	Channels   int
}

// ChimeFormat is the format produced by Chime
var ChimeFormat = Format{SampleRate: 44100, Channels: 1}

// Note is a single sine tone
type Note struct {
	Frequency float64
	Duration  time.Duration
}

// chimeNotes is a rising fifth
var chimeNotes = []Note{
	{Frequency: 880, Duration: 120 * time.Millisecond},
	{Frequency: 1320, Duration: 180 * time.Millisecond},
}

const (
	chimeVolume = 0.3
	// fade in/out length per note, avoids clicks at note boundaries
	fadeDuration = 10 * time.Millisecond
)

// Chime returns the greeting chime as mono PCM in ChimeFormat
func Chime() []byte {
	return Tones(ChimeFormat.SampleRate, chimeVolume, chimeNotes...)
}

// Tones renders the notes back to back as mono 16-bit PCM.
// volume is clamped to [0, 1].
func Tones(sampleRate int, volume float64, notes ...Note) []byte {
	volume = math.Max(0, math.Min(1, volume))

	total := 0
	for _, n := range notes {
		total += samplesFor(sampleRate, n.Duration)
	}

	out := make([]byte, 0, total*2)
	fade := samplesFor(sampleRate, fadeDuration)

	for _, n := range notes {
		count := samplesFor(sampleRate, n.Duration)
		for i := 0; i < count; i++ {
			env := 1.0
			if fade > 0 {
				if i < fade {
					env = float64(i) / float64(fade)
				} else if rem := count - 1 - i; rem < fade {
					env = float64(rem) / float64(fade)
				}
			}

			v := math.Sin(2*math.Pi*n.Frequency*float64(i)/float64(sampleRate)) * volume * env
			out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
		}
	}

	return out
}

func samplesFor(sampleRate int, d time.Duration) int {
	return int(int64(sampleRate) * int64(d) / int64(time.Second))
}
