// Package fancy prints leveled, colored output for the CLI.
package fancy

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

var (
	Info    = aurora.White
	Success = aurora.Green
	Warn    = aurora.Yellow
	Error   = aurora.Red
)

type Level = func(arg any) aurora.Value

func Println(level Level, args ...any) {
	fmt.Println(level(fmt.Sprint(args...)))
}

func Printf(level Level, format string, args ...any) {
	fmt.Print(level(fmt.Sprintf(format, args...)))
}

func Infoln(args ...any) {
	Println(Info, args...)
}

func Infof(format string, args ...any) {
	Printf(Info, format, args...)
}

func Successln(args ...any) {
	Println(Success, args...)
}

func Successf(format string, args ...any) {
	Printf(Success, format, args...)
}

func Warnln(args ...any) {
	Println(Warn, args...)
}

func Warnf(format string, args ...any) {
	Printf(Warn, format, args...)
}

func Errorln(args ...any) {
	Println(Error, args...)
}

func Errorf(format string, args ...any) {
	Printf(Error, format, args...)
}
