package scenes

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/catchthemall/pkg/config"
	"github.com/decker502/catchthemall/pkg/game"
	"github.com/decker502/catchthemall/pkg/utils"
)

// FormatScore 分数文本
func FormatScore(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// FormatRemaining 剩余时间文本,保留一位小数
func FormatRemaining(seconds float64) string {
	return fmt.Sprintf("Remaining time: %.1f", seconds)
}

// FormatClock 时钟戳文本
func FormatClock(t time.Time) string {
	return t.Format(config.ClockLayout)
}

// HUD 绘制分数、剩余时间、结束提示和时钟戳
type HUD struct {
	width  float64
	height float64

	clockFace     *text.GoTextFace
	scoreFace     *text.GoTextFace
	timerFace     *text.GoTextFace
	endTitleFace  *text.GoTextFace
	endPromptFace *text.GoTextFace

	// now 时钟来源,测试中可替换
	now func() time.Time
}

// NewHUD 创建 HUD 并加载所需字号
func NewHUD(rm *game.ResourceManager, width, height float64) (*HUD, error) {
	h := &HUD{width: width, height: height, now: time.Now}

	faces := []struct {
		target **text.GoTextFace
		size   float64
	}{
		{&h.clockFace, config.ClockFontSize},
		{&h.scoreFace, config.ScoreFontSize},
		{&h.timerFace, config.TimerFontSize},
		{&h.endTitleFace, config.EndTitleFontSize},
		{&h.endPromptFace, config.EndPromptFontSize},
	}
	for _, f := range faces {
		face, err := rm.LoadFont(f.size)
		if err != nil {
			return nil, fmt.Errorf("failed to load HUD font (size %.0f): %w", f.size, err)
		}
		*f.target = face
	}

	return h, nil
}

// SetClock 替换时钟来源
func (h *HUD) SetClock(now func() time.Time) {
	h.now = now
}

// Draw 按会话状态绘制全部 HUD 文本
func (h *HUD) Draw(screen *ebiten.Image, session *Session) {
	h.drawScore(screen, session.Score())

	switch session.State() {
	case StatePlaying:
		h.drawTimer(screen, session.RemainingSeconds())
	case StateEnded:
		h.drawEndMessage(screen)
	}

	h.drawClock(screen)
}

func (h *HUD) drawScore(screen *ebiten.Image, score int) {
	utils.DrawText(screen, FormatScore(score), h.scoreFace,
		config.ScoreTextX, config.ScoreTextY, utils.AlignLeft, config.HUDTextColor)
}

func (h *HUD) drawTimer(screen *ebiten.Image, seconds float64) {
	utils.DrawText(screen, FormatRemaining(seconds), h.timerFace,
		h.width/2, config.TimerTextY, utils.AlignCenter, config.TimerTextColor)
}

func (h *HUD) drawEndMessage(screen *ebiten.Image) {
	titleY := config.EndTitleY(h.height)
	utils.DrawText(screen, config.EndTitleText, h.endTitleFace,
		h.width/2, titleY, utils.AlignCenter, config.HUDTextColor)
	utils.DrawText(screen, config.EndPromptText, h.endPromptFace,
		h.width/2, titleY+config.EndPromptGap, utils.AlignCenter, config.HUDTextColor)
}

func (h *HUD) drawClock(screen *ebiten.Image) {
	utils.DrawText(screen, FormatClock(h.now()), h.clockFace,
		config.ClockTextX, config.ClockTextY, utils.AlignLeft, config.HUDTextColor)
}
