// Package audio implements the sample mixer of the interpreter: four raw
// 8-bit voices resampled to the output rate plus the four-channel SFX
// tracker, mixed into a single int16 stream and handed to the host as
// float32 samples.
package audio

import (
	"raw-engine/internal/debug"
)

const (
	// MixFreq is the output sample rate.
	MixFreq = 44100

	// MixBufSize is the capacity of the internal int16 mix buffer.
	MixBufSize = 4096 * 8

	// MixChannels is the number of raw voices.
	MixChannels = 4

	// MaxAudioSamples bounds one host callback's worth of float samples.
	MaxAudioSamples = 2048 * 16

	// paulaFreq is the Amiga Paula clock, which drives every
	// period-to-frequency conversion.
	paulaFreq = 7159092
)

// periodTable converts the 40 sound-effect frequency indices exposed to the
// bytecode into Paula periods.
var periodTable = [40]uint16{
	1076, 1016, 960, 906, 856, 808, 762, 720, 678, 640,
	604, 570, 538, 508, 480, 453, 428, 404, 381, 360,
	339, 320, 302, 285, 269, 254, 240, 226, 214, 202,
	190, 180, 170, 160, 151, 143, 135, 127, 120, 113,
}

// SoundFreq converts a frequency index in [0,39] to Hz.
func SoundFreq(period uint8) int {
	return paulaFreq / (int(periodTable[period]) * 2)
}

// Channel is one raw voice. DataOff is an offset into the arena (-1 when the
// voice is silent); sample headers have already been consumed, so it points
// at the first sample byte.
type Channel struct {
	DataOff int32
	Pos     Frac
	Len     uint32
	LoopLen uint32
	LoopPos uint32
	Volume  int
}

// Callback receives one host tick's worth of interleaved stereo float
// samples in [-1, 1).
type Callback func(samples []float32)

// Mixer mixes the raw voices and the SFX player into the output stream. The
// arena slice aliases the resource manager's memory block so voices can be
// addressed by offset.
type Mixer struct {
	Channels [MixChannels]Channel
	Sfx      SfxPlayer

	arena    []byte
	samples  [MixBufSize]int16
	floatBuf [MaxAudioSamples]float32
	callback Callback

	Log *debug.Logger
}

// NewMixer creates a mixer over the given arena.
func NewMixer(arena []byte, callback Callback, log *debug.Logger) *Mixer {
	m := &Mixer{arena: arena, callback: callback, Log: log}
	m.Sfx.arena = arena
	m.Sfx.Log = log
	return m
}

// SetCallback rebinds the host sample callback (used after snapshot load).
func (m *Mixer) SetCallback(cb Callback) {
	m.callback = cb
}

// SetArena rebinds the arena alias (used after snapshot load).
func (m *Mixer) SetArena(arena []byte) {
	m.arena = arena
	m.Sfx.arena = arena
}

// PlaySoundRaw starts a raw voice. data points at the resource payload: two
// big-endian words of length and loop length (in 16-bit units), four unused
// bytes, then the samples.
func (m *Mixer) PlaySoundRaw(channel uint8, dataOff int32, freq int, volume uint8) {
	chn := &m.Channels[channel]
	data := m.arena[dataOff:]
	chn.DataOff = dataOff + 8
	chn.Pos.Reset(freq, MixFreq)

	length := uint32(readBEUint16(data)) * 2
	chn.LoopLen = uint32(readBEUint16(data[2:])) * 2
	if chn.LoopLen != 0 {
		chn.LoopPos = length
	} else {
		chn.LoopPos = 0
	}
	chn.Len = length
	chn.Volume = int(volume)
}

// StopSound silences one voice.
func (m *Mixer) StopSound(channel uint8) {
	m.Log.LogAudiof(debug.LogLevelDebug, "Mixer: stop channel %d", channel)
	m.Channels[channel].DataOff = -1
}

// StopAll silences every voice and the tracker.
func (m *Mixer) StopAll() {
	for i := uint8(0); i < MixChannels; i++ {
		m.StopSound(i)
	}
	m.Sfx.Stop()
}

// Init clears the voices and binds the host callback.
func (m *Mixer) Init(callback Callback) {
	for i := range m.Channels {
		m.Channels[i] = Channel{DataOff: -1}
	}
	m.callback = callback
}

func mixI16(sample1, sample2 int) int16 {
	sample := sample1 + sample2
	if sample < -32768 {
		return -32768
	}
	if sample > 32767 {
		return 32767
	}
	return int16(sample)
}

func toRawI16(a int) int {
	return ((a << 8) | a) - 32768
}

func (m *Mixer) mixRaw(chn *Channel, sample *int16) {
	if chn.DataOff < 0 {
		return
	}
	pos := chn.Pos.Int()
	chn.Pos.Offset += uint64(chn.Pos.Inc)
	if chn.LoopLen != 0 {
		if pos >= chn.LoopPos+chn.LoopLen {
			pos = chn.LoopPos
			chn.Pos.Offset = uint64(chn.LoopPos)<<fracBits + uint64(chn.Pos.Inc)
		}
	} else {
		if pos >= chn.Len {
			chn.DataOff = -1
			return
		}
	}
	raw := toRawI16(int(m.arena[uint32(chn.DataOff)+pos]^0x80)) * chn.Volume / 64
	*sample = mixI16(int(*sample), raw)
}

// amigaStereoChannels selects Amiga-style hard panning (voices 0,3 left and
// 1,2 right) instead of mono duplicated to both outputs.
const amigaStereoChannels = false

func (m *Mixer) mixChannels(samples []int16) {
	if amigaStereoChannels {
		for i := 0; i+1 < len(samples); i += 2 {
			m.mixRaw(&m.Channels[0], &samples[i])
			m.mixRaw(&m.Channels[3], &samples[i])
			m.mixRaw(&m.Channels[1], &samples[i+1])
			m.mixRaw(&m.Channels[2], &samples[i+1])
		}
	} else {
		for i := 0; i+1 < len(samples); i += 2 {
			for j := 0; j < MixChannels; j++ {
				m.mixRaw(&m.Channels[j], &samples[i])
			}
			samples[i+1] = samples[i]
		}
	}
}

// Update mixes numSamples interleaved int16 samples, converts them to float
// and invokes the host callback.
func (m *Mixer) Update(numSamples int) {
	if numSamples > MixBufSize {
		numSamples = MixBufSize
	}
	buf := m.samples[:numSamples]
	for i := range buf {
		buf[i] = 0
	}
	m.mixChannels(buf)
	m.Sfx.ReadSamples(buf)
	for i := 0; i < numSamples; i++ {
		m.floatBuf[i] = (float32(buf[i])+32768)/32768 - 1
	}
	if m.callback != nil {
		m.callback(m.floatBuf[:numSamples])
	}
}

func readBEUint16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}
