package term

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var Mute bool

// Stderr receives every info and warn message.
var Stderr io.Writer = os.Stderr

func PrintInfo(msg string, args ...any) {
	if Mute {
		return
	}
	msg = fmt.Sprintf(msg, args...)
	c := color.New(color.FgGreen, color.Bold)
	fmt.Fprintf(Stderr, "%s %s\n", c.Sprint("==>"), msg)
}

func PrintWarn(msg string, args ...any) {
	if Mute {
		return
	}
	msg = fmt.Sprintf(msg, args...)
	c := color.New(color.FgYellow, color.Bold)
	fmt.Fprintf(Stderr, "%s %s\n", c.Sprint("==>"), msg)
}
