// verify_session 无窗口运行完整的一局游戏
//
// 用法:
//
//	go run ./cmd/verify_session --frames 600 --seed 7 --script "right@1,up@40,left@200"
//
// 与窗口模式使用同一套 Session 代码,只是没有图片和音频输出。
// 必须在项目根目录运行(或用 --root 指定),以便读取 assets/ 和 data/。
package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/decker502/catchthemall/pkg/app"
	"github.com/decker502/catchthemall/pkg/config"
	"github.com/decker502/catchthemall/pkg/embedded"
	"github.com/decker502/catchthemall/pkg/game"
	"github.com/decker502/catchthemall/pkg/logging"
	"github.com/decker502/catchthemall/pkg/scenes"
)

var (
	flagRoot    string
	flagConfig  string
	flagFrames  int
	flagSeed    uint64
	flagScript  string
	flagEvery   int
	flagVerbose bool
)

var actionNames = map[string]game.Action{
	"left":    game.ActionLeft,
	"right":   game.ActionRight,
	"up":      game.ActionUp,
	"down":    game.ActionDown,
	"restart": game.ActionRestart,
}

// parseScript 解析 "action@frame" 列表,帧号从 1 开始
func parseScript(script string) (map[int]game.InputFrame, error) {
	frames := make(map[int]game.InputFrame)
	if strings.TrimSpace(script) == "" {
		return frames, nil
	}

	for _, item := range strings.Split(script, ",") {
		item = strings.TrimSpace(item)
		name, at, ok := strings.Cut(item, "@")
		if !ok {
			return nil, fmt.Errorf("invalid script entry %q (want action@frame)", item)
		}
		action, ok := actionNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		frame, err := strconv.Atoi(at)
		if err != nil || frame < 1 {
			return nil, fmt.Errorf("invalid frame %q in %q", at, item)
		}

		input, exists := frames[frame]
		if !exists {
			input = game.NewInputFrame()
		}
		input.Set(action)
		frames[frame] = input
	}
	return frames, nil
}

// soundCounter 静音的音效播放器,只统计播放次数
type soundCounter struct {
	counts map[string]int
}

func (c *soundCounter) PlaySound(soundID string, volume float64) game.Playback {
	c.counts[soundID]++
	return nil
}

func printSnapshot(label string, snap scenes.Snapshot) {
	fmt.Printf("%-8s frame=%-5d state=%-7s score=%-4d bonus=%-3d remaining=%-4d player=(%.1f, %.1f)\n",
		label, snap.Frame, snap.State, snap.Score, snap.SpeedBonus, snap.RemainingFrames, snap.PlayerX, snap.PlayerY)
}

func run() error {
	embedded.Init(os.DirFS(flagRoot), os.DirFS(flagRoot))
	logging.Configure(os.Stderr, flagVerbose)

	script, err := parseScript(flagScript)
	if err != nil {
		return err
	}

	cfg, err := config.LoadDefaultGameConfig(flagConfig)
	if err != nil {
		return err
	}
	rules, err := scenes.RulesFromConfig(cfg)
	if err != nil {
		return err
	}

	rm := game.NewResourceManager(cfg.Audio.SampleRate)
	if err := rm.LoadResourceConfig(app.ResourceConfigPath); err != nil {
		return err
	}
	assets, err := scenes.LoadSessionAssetSizes(rm)
	if err != nil {
		return err
	}

	sounds := &soundCounter{counts: make(map[string]int)}
	rng := app.NewRNG(flagSeed)
	scene := scenes.NewGameScene(func() *scenes.Session {
		return scenes.NewSession(rules, assets, rng, sounds)
	}, nil)

	fmt.Printf("coins=%d frames=%d seed=%d\n", rules.CoinCount, flagFrames, flagSeed)
	printSnapshot("start", scene.Session().Snapshot())

	for frame := 1; frame <= flagFrames; frame++ {
		input, ok := script[frame]
		if !ok {
			input = game.NewInputFrame()
		}
		scene.Update(1.0/float64(config.TicksPerSecond), input)

		if flagEvery > 0 && frame%flagEvery == 0 {
			printSnapshot("progress", scene.Session().Snapshot())
		}
	}

	printSnapshot("final", scene.Session().Snapshot())
	fmt.Printf("restarts=%d\n", scene.Restarts())

	ids := make([]string, 0, len(sounds.counts))
	for id := range sounds.counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Printf("sound %s x%d\n", id, sounds.counts[id])
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:           "verify_session",
	Short:         "无窗口运行一局游戏并打印状态",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagRoot, "root", ".", "包含 assets/ 和 data/ 的目录")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "覆盖内置玩法参数的 YAML 文件")
	rootCmd.Flags().IntVar(&flagFrames, "frames", 600, "运行的帧数")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 1, "随机数种子 (0 表示按时间)")
	rootCmd.Flags().StringVar(&flagScript, "script", "", "输入脚本,如 right@1,up@40,restart@700")
	rootCmd.Flags().IntVar(&flagEvery, "every", 60, "每隔多少帧打印一次状态 (0 关闭)")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "显示详细调试信息")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
