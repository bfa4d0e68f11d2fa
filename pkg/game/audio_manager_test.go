package game

import "testing"

// fakeStreamPlayer 记录播放器调用;closed 后 IsPlaying 返回 false,与 audio.Player 一致
type fakeStreamPlayer struct {
	playing bool
	volume  float64
	closes  int
	pauses  int
}

func (p *fakeStreamPlayer) IsPlaying() bool          { return p.playing && p.closes == 0 }
func (p *fakeStreamPlayer) SetVolume(volume float64) { p.volume = volume }
func (p *fakeStreamPlayer) Play()                    { p.playing = true }
func (p *fakeStreamPlayer) Pause()                   { p.playing = false; p.pauses++ }
func (p *fakeStreamPlayer) Close() error             { p.closes++; return nil }

// newTestAudioManager 返回使用假播放器的音频管理器,以及已创建的播放器列表
func newTestAudioManager(t *testing.T) (*AudioManager, *[]*fakeStreamPlayer) {
	t.Helper()
	initTestEmbedded(t)
	rm := NewResourceManager(44100)
	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	created := &[]*fakeStreamPlayer{}
	am := NewAudioManager(nil, rm)
	am.newPlayer = func(pcm []byte) streamPlayer {
		if len(pcm) == 0 {
			t.Error("Expected decoded PCM for the new player")
		}
		p := &fakeStreamPlayer{}
		*created = append(*created, p)
		return p
	}
	return am, created
}

func TestAudioManagerPlaySound(t *testing.T) {
	am, created := newTestAudioManager(t)
	if am.IsSilent() {
		t.Fatal("Expected audio manager with a player factory not to be silent")
	}

	first := am.PlaySound("SOUND_COIN_PICKED", 0.6)
	second := am.PlaySound("SOUND_COIN_PICKED", 0.6)

	if first == nil || second == nil {
		t.Fatal("Expected playback handles")
	}
	if len(*created) != 2 {
		t.Fatalf("Expected each play to create its own player, got %d", len(*created))
	}
	p := (*created)[0]
	if !p.IsPlaying() || p.volume != 0.6 {
		t.Errorf("Expected playing at volume 0.6, got playing=%v volume=%v", p.IsPlaying(), p.volume)
	}
	if am.ActiveCount() != 2 {
		t.Errorf("Expected 2 active players, got %d", am.ActiveCount())
	}

	if got := am.PlaySound("SOUND_UNKNOWN", 1); got != nil {
		t.Error("Expected nil playback for an unknown sound")
	}
}

func TestAudioManagerPrunesFinishedPlayers(t *testing.T) {
	am, created := newTestAudioManager(t)

	slot := am.PlaySound("SOUND_COIN_PICKED", 0.6)
	am.PlaySound("SOUND_COIN_PICKED", 0.6)
	finished, still := (*created)[0], (*created)[1]

	// 第一个播放结束,下一次播放时被关闭并回收
	finished.playing = false
	am.PlaySound("SOUND_COIN_PICKED", 0.6)

	if finished.closes != 1 {
		t.Errorf("Expected finished player closed once, got %d", finished.closes)
	}
	if still.closes != 0 {
		t.Errorf("Expected playing player to stay open, got %d closes", still.closes)
	}
	if am.ActiveCount() != 2 {
		t.Errorf("Expected 2 active players after pruning, got %d", am.ActiveCount())
	}

	// 调用方仍持有已回收的句柄:轮询结果为未在播放,且不会被重复关闭
	if slot.IsPlaying() {
		t.Error("Expected a closed handle to report not playing")
	}
	am.PlaySound("SOUND_COIN_PICKED", 0.6)
	if finished.closes != 1 {
		t.Errorf("Expected no second close, got %d", finished.closes)
	}
}

func TestAudioManagerStopAll(t *testing.T) {
	am, created := newTestAudioManager(t)
	am.PlaySound("SOUND_COIN_PICKED", 0.6)
	am.PlaySound("SOUND_COIN_PICKED", 0.6)

	am.StopAll()

	for i, p := range *created {
		if p.pauses != 1 || p.closes != 1 {
			t.Errorf("Player %d: expected 1 pause and 1 close, got %d and %d", i, p.pauses, p.closes)
		}
	}
	if am.ActiveCount() != 0 {
		t.Errorf("Expected no active players, got %d", am.ActiveCount())
	}
}
