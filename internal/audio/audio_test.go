package audio

import (
	"encoding/binary"
	"testing"

	"raw-engine/internal/debug"
)

func newTestMixer(arena []byte) *Mixer {
	m := NewMixer(arena, nil, debug.NewLogger(100))
	m.Init(nil)
	return m
}

// putRawSample lays out a raw sound resource at off: length and loop length
// in 16-bit words, four unused bytes, then the 8-bit samples.
func putRawSample(arena []byte, off int32, samples []byte, loopWords uint16) {
	binary.BigEndian.PutUint16(arena[off:], uint16(len(samples)/2))
	binary.BigEndian.PutUint16(arena[off+2:], loopWords)
	copy(arena[off+8:], samples)
}

func TestSoundFreqTable(t *testing.T) {
	tests := []struct {
		period uint8
		freq   int
	}{
		{0, 7159092 / (1076 * 2)},
		{5, 7159092 / (808 * 2)},
		{39, 7159092 / (113 * 2)},
	}
	for _, tt := range tests {
		if got := SoundFreq(tt.period); got != tt.freq {
			t.Errorf("SoundFreq(%d) = %d, want %d", tt.period, got, tt.freq)
		}
	}
}

func TestFrac(t *testing.T) {
	var f Frac
	f.Reset(22050, 44100)
	if f.Inc != 1<<15 {
		t.Fatalf("inc = 0x%X", f.Inc)
	}
	f.Offset = 3<<16 | 0x8000
	if f.Int() != 3 {
		t.Fatalf("int = %d", f.Int())
	}
	if got := f.Interpolate(0, 100); got != 50 {
		t.Fatalf("interpolate = %d, want the halfway blend", got)
	}
}

func TestToI16(t *testing.T) {
	// expand-then-bias, no clamp: ((a<<8)|a) - 32768
	tests := []struct {
		in   int
		want int16
	}{
		{0, -32768},
		{64, -16320},
		{127, (127<<8 | 127) - 32768},
	}
	for _, tt := range tests {
		if got := toI16(tt.in); got != tt.want {
			t.Errorf("toI16(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRawVoiceEndsExactlyOnce(t *testing.T) {
	arena := make([]byte, 4096)
	samples := make([]byte, 8)
	for i := range samples {
		samples[i] = 0xFF // loud
	}
	putRawSample(arena, 0, samples, 0)

	m := newTestMixer(arena)
	// freq == mix rate: the stepper advances one sample per output frame
	m.PlaySoundRaw(0, 0, MixFreq, 63)

	if m.Channels[0].DataOff != 8 || m.Channels[0].Len != 8 {
		t.Fatalf("channel setup wrong: %+v", m.Channels[0])
	}

	// 8 stereo frames consume the 8 samples; the voice is still armed
	// because the end is only noticed on the next step
	m.Update(16)
	if m.Channels[0].DataOff < 0 {
		t.Fatal("voice ended early")
	}
	m.Update(2)
	if m.Channels[0].DataOff >= 0 {
		t.Fatal("voice must end one step past its length")
	}

	// further mixing produces silence and keeps the voice dead
	var got []float32
	m.SetCallback(func(s []float32) {
		got = append(got[:0], s...)
	})
	m.Update(8)
	for _, s := range got {
		if s != 0 {
			t.Fatal("dead voice contributed samples")
		}
	}
}

func TestRawVoiceLoops(t *testing.T) {
	arena := make([]byte, 4096)
	samples := make([]byte, 8)
	putRawSample(arena, 0, samples, 4) // 4-word loop right after the 8-byte sample

	m := newTestMixer(arena)
	m.PlaySoundRaw(0, 0, MixFreq, 63)
	if m.Channels[0].LoopPos != 8 || m.Channels[0].LoopLen != 8 {
		t.Fatalf("loop setup wrong: %+v", m.Channels[0])
	}

	m.Update(64)
	if m.Channels[0].DataOff < 0 {
		t.Fatal("looping voice must not end")
	}
}

func TestStopSound(t *testing.T) {
	arena := make([]byte, 4096)
	putRawSample(arena, 0, make([]byte, 8), 0)
	m := newTestMixer(arena)
	m.PlaySoundRaw(2, 0, MixFreq, 40)
	m.StopSound(2)
	if m.Channels[2].DataOff >= 0 {
		t.Fatal("channel not stopped")
	}
}

func TestMixOutputIsStereoDuplicated(t *testing.T) {
	arena := make([]byte, 4096)
	samples := make([]byte, 16)
	for i := range samples {
		samples[i] = 0x40
	}
	putRawSample(arena, 0, samples, 0)

	m := newTestMixer(arena)
	var got []float32
	m.SetCallback(func(s []float32) {
		got = append(got[:0], s...)
	})
	m.PlaySoundRaw(0, 0, MixFreq, 63)
	m.Update(8)

	if len(got) != 8 {
		t.Fatalf("callback got %d samples", len(got))
	}
	for i := 0; i < len(got); i += 2 {
		if got[i] != got[i+1] {
			t.Fatal("mono mix must duplicate channels")
		}
		if got[i] <= -1 || got[i] >= 1 {
			t.Fatalf("sample %f out of range", got[i])
		}
	}
	if got[0] == 0 {
		t.Fatal("expected a non-silent sample")
	}
}

// buildModule lays out a minimal SFX module at off: a header with the event
// delay, 15 empty instrument slots, the order count at 0x3F, the order table
// at 0x40 and one 1 KiB pattern at 0xC0.
func buildModule(arena []byte, off int32, delay uint16, numOrder uint8) {
	binary.BigEndian.PutUint16(arena[off:], delay)
	arena[off+0x3F] = numOrder
	// order table: all zero (pattern 0)
}

func TestTrackerSyncCell(t *testing.T) {
	arena := make([]byte, 8192)
	const modOff = 0x100
	buildModule(arena, modOff, 1000, 2)
	// channel 0 cell: 0xFFFD marks a sync event carrying note2
	binary.BigEndian.PutUint16(arena[modOff+0xC0:], 0xFFFD)
	binary.BigEndian.PutUint16(arena[modOff+0xC2:], 0x1234)

	m := newTestMixer(arena)
	m.Sfx.Resolve = func(resNum uint16, resType uint8) (int32, bool) {
		return modOff, true
	}
	var synced []uint16
	m.Sfx.OnSync = func(v uint16) {
		synced = append(synced, v)
	}

	if err := m.Sfx.LoadModule(1, 0, 0); err != nil {
		t.Fatalf("LoadModule: %v", err)
	}
	if m.Sfx.Delay != 1000 {
		t.Fatalf("delay = %d, want the module header value", m.Sfx.Delay)
	}
	m.Sfx.Start()
	m.Sfx.Play(MixFreq)

	buf := make([]int16, 64)
	m.Sfx.ReadSamples(buf)

	if len(synced) != 1 || synced[0] != 0x1234 {
		t.Fatalf("sync events = %v", synced)
	}
	if m.Sfx.Mod.CurPos != 16 {
		t.Fatalf("pattern position = %d", m.Sfx.Mod.CurPos)
	}
}

func TestTrackerNoteStartsChannel(t *testing.T) {
	arena := make([]byte, 8192)
	const modOff = 0x100
	const insOff = 0x1000
	buildModule(arena, modOff, 1000, 2)
	// instrument 1 in slot 0: resource 7, volume 0x20
	binary.BigEndian.PutUint16(arena[modOff+2:], 7)
	binary.BigEndian.PutUint16(arena[modOff+4:], 0x20)
	// instrument sample: 4 words long, no loop
	binary.BigEndian.PutUint16(arena[insOff:], 4)

	// channel 0 cell: period 0x100, sample 1, volume-up effect of 0x10
	binary.BigEndian.PutUint16(arena[modOff+0xC0:], 0x100)
	binary.BigEndian.PutUint16(arena[modOff+0xC2:], 0x1510)

	m := newTestMixer(arena)
	m.Sfx.Resolve = func(resNum uint16, resType uint8) (int32, bool) {
		switch resNum {
		case 1:
			return modOff, true
		case 7:
			return insOff, true
		}
		return -1, false
	}
	if err := m.Sfx.LoadModule(1, 0, 0); err != nil {
		t.Fatalf("LoadModule: %v", err)
	}
	m.Sfx.Start()
	m.Sfx.Play(MixFreq)

	// a few frames only, so the 8-byte sample is still playing
	buf := make([]int16, 16)
	m.Sfx.ReadSamples(buf)

	ch := &m.Sfx.Channels[0]
	if ch.SampleDataOff != insOff+8 {
		t.Fatalf("sample data offset = %d", ch.SampleDataOff)
	}
	if ch.SampleLen != 8 {
		t.Fatalf("sample len = %d", ch.SampleLen)
	}
	if ch.Volume != 0x30 {
		t.Fatalf("volume = 0x%X, want instrument 0x20 + effect 0x10", ch.Volume)
	}
	wantInc := uint32((int64(paulaFreq/(0x100*2)) << fracBits) / MixFreq)
	if ch.Pos.Inc != wantInc {
		t.Fatalf("inc = %d, want %d", ch.Pos.Inc, wantInc)
	}
}

func TestTrackerMissingInstrumentIsFatal(t *testing.T) {
	arena := make([]byte, 8192)
	const modOff = 0x100
	buildModule(arena, modOff, 1000, 1)
	binary.BigEndian.PutUint16(arena[modOff+2:], 9) // unknown resource

	m := newTestMixer(arena)
	m.Sfx.Resolve = func(resNum uint16, resType uint8) (int32, bool) {
		if resNum == 9 {
			return -1, false
		}
		return modOff, true
	}
	if err := m.Sfx.LoadModule(1, 0, 0); err == nil {
		t.Fatal("expected an instrument load failure")
	}
}

func TestTrackerStopsAtLastOrder(t *testing.T) {
	arena := make([]byte, 8192)
	const modOff = 0x100
	buildModule(arena, modOff, 6000, 1) // one order only

	m := newTestMixer(arena)
	m.Sfx.Resolve = func(resNum uint16, resType uint8) (int32, bool) {
		return modOff, true
	}
	if err := m.Sfx.LoadModule(1, 0, 0); err != nil {
		t.Fatalf("LoadModule: %v", err)
	}
	m.Sfx.Start()
	m.Sfx.Play(MixFreq)

	// drive through the whole 1 KiB pattern (64 rows)
	buf := make([]int16, 8192)
	for i := 0; i < 200 && m.Sfx.Playing; i++ {
		m.Sfx.ReadSamples(buf)
	}
	if m.Sfx.Playing {
		t.Fatal("tracker must stop after the last order")
	}
}

func TestUpdateBoundsBuffer(t *testing.T) {
	arena := make([]byte, 64)
	m := newTestMixer(arena)
	called := 0
	m.SetCallback(func(s []float32) {
		called++
		if len(s) > MixBufSize {
			t.Fatal("oversized mix request must clamp")
		}
	})
	m.Update(MixBufSize + 100)
	if called != 1 {
		t.Fatal("callback not invoked")
	}
}
