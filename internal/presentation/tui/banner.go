package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text, color string
}{
	{` _____                _   _`, "#fca5a5"},
	{`|__  /___ _ __ ___   | | | | ___  _   _ _ __`, "#f87171"},
	{`  / // _ \ '__/ _ \  | |_| |/ _ \| | | | '__|`, "#ef4444"},
	{` / /|  __/ | | (_) | |  _  | (_) | |_| | |`, "#dc2626"},
	{`/____\___|_|  \___/  |_| |_|\___/ \__,_|_|`, "#b91c1c"},
}

// PrintBanner writes the ZeroHour banner to w, colored for the terminal profile.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, termenv.String("  exposure dashboard backend v"+version).Faint())
	fmt.Fprintln(w)
}
