package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/vimeodl/vimeodl/catalog"
	"github.com/vimeodl/vimeodl/color"
	"github.com/vimeodl/vimeodl/constant"
	"github.com/vimeodl/vimeodl/icon"
	"github.com/vimeodl/vimeodl/style"
	"github.com/vimeodl/vimeodl/util"
)

const defaultWidth = 80

// Credit names the author of the original downloader and where it was published.
const Credit = "Original idea and implementation by sk8ordi3 (https://github.com/sk8ordi3)\n" +
	"Source: https://forum.videohelp.com/threads/414958-How-to-download-vimeo-video-from-a-new-stream-url/page2#post2741697"

// Info writes a status line opened by the [INFO] marker.
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, " %s %s\n", style.InfoPrefix(), fmt.Sprintf(format, args...))
}

// Error writes a failure line opened by the [ERROR] marker.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, " %s %s\n", style.ErrorPrefix(), strings.Trim(err.Error(), " \n"))
}

// Options lists the numbered variants offered for manual selection.
func Options(w io.Writer, options []catalog.Option) {
	fmt.Fprintln(w, style.Bold("Available options:"))

	for _, o := range options {
		kind, _ := o.Kind()
		ic := icon.Get(icon.Video)
		if kind == catalog.Audio {
			ic = icon.Get(icon.Audio)
		}

		fmt.Fprintf(w, "%s - %s | %s %s\n",
			style.Fg(color.Yellow)(fmt.Sprint(o.Index)),
			kind,
			o.Variant.Label(),
			style.Faint(ic),
		)
	}
}

// Best announces the automatically chosen variants.
func Best(w io.Writer, video, audio string) {
	fmt.Fprintf(w, "\nbest video: %s\n", style.Fg(color.Green)(video))
	fmt.Fprintf(w, "best audio: %s\n\n", style.Fg(color.Green)(audio))
}

// Banner writes the application header, wrapped to the terminal width.
func Banner(w io.Writer) {
	width := defaultWidth
	if tw, _, err := util.TerminalSize(); err == nil && tw > 0 {
		width = tw
	}

	fmt.Fprintln(w, style.Fg(color.HiPurple)(constant.AsciiArtLogo))
	fmt.Fprintln(w, wordwrap.String(
		"Downloads a video from a signed v2 playlist.json link by fetching its best (or chosen) "+
			"video and audio streams and muxing them into one file.",
		width,
	))
	fmt.Fprintln(w, style.Faint(Credit))
	fmt.Fprintf(w, "\n%s Please provide v2 playlist.json link\n\n", icon.Get(icon.Link))
}
