// Package logging 提供按子系统区分前缀的结构化日志
//
// 所有子系统共享同一个根 Logger 的输出和级别。
// 子 Logger 在创建时复制根 Logger 的级别,因此 Configure 应在
// 构造任何场景或管理器之前调用。
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var root = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Level:           log.WarnLevel,
})

// Configure 设置根 Logger 的输出和级别
// verbose 为 true 时输出 Debug 级别日志,否则只输出警告和错误
func Configure(w io.Writer, verbose bool) {
	if w != nil {
		root.SetOutput(w)
	}
	if verbose {
		root.SetLevel(log.DebugLevel)
	} else {
		root.SetLevel(log.WarnLevel)
	}
}

// For 返回带子系统前缀的 Logger,例如 For("AudioManager")
func For(subsystem string) *log.Logger {
	return root.WithPrefix(subsystem)
}
