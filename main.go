package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/catchthemall/pkg/app"
	"github.com/decker502/catchthemall/pkg/config"
	"github.com/decker502/catchthemall/pkg/embedded"
	"github.com/decker502/catchthemall/pkg/logging"
)

type options struct {
	configPath string
	verbose    bool
	seed       uint64
	fullscreen bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "catchthemall",
		Short:         "Catch them all - 在倒计时结束前接住尽可能多的金币",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "覆盖内置玩法参数的 YAML 文件")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "显示详细调试信息")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "随机数种子 (0 表示按时间)")
	cmd.Flags().BoolVar(&opts.fullscreen, "fullscreen", false, "全屏启动")

	return cmd
}

func run(opts *options) error {
	// 必须在任何资源加载之前初始化
	embedded.Init(assetsFS, dataFS)
	logging.Configure(os.Stderr, opts.verbose)

	cfg, err := config.LoadDefaultGameConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.fullscreen {
		cfg.Window.Fullscreen = true
	}

	game, err := app.NewApp(app.Config{Game: cfg, Seed: opts.seed})
	if err != nil {
		return fmt.Errorf("初始化失败: %w", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
