package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"music-scheduler/internal/handlers"
	"music-scheduler/internal/player"
	"music-scheduler/internal/playlist"
)

// output prints v as JSON when --json is set, otherwise through human.
func output(c *cli.Context, v interface{}, human func(w io.Writer)) error {
	if c.Bool("json") {
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	human(c.App.Writer)
	return nil
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printSongs(w io.Writer, songs []playlist.Song) {
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tID\tKIND\tTITLE")
	for i, s := range songs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, s.ID, s.Kind, s.Title)
	}
	_ = tw.Flush()
}

func printLibrary(w io.Writer, lib player.Library) {
	if len(lib.Active) == 0 {
		fmt.Fprintln(w, "Playlist is empty")
		return
	}
	order := "canonical"
	if lib.ShuffleEnabled {
		order = "shuffled"
	}
	fmt.Fprintf(w, "%d songs, %s order\n", len(lib.Active), order)
	printSongs(w, lib.Active)
}

func printSchedules(w io.Writer, views []handlers.ScheduleView) {
	if len(views) == 0 {
		fmt.Fprintln(w, "No schedules")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tWINDOW\tREPEAT\tSTATUS\tSUMMARY")
	for _, v := range views {
		repeat := "once"
		if v.RepeatDaily {
			repeat = "daily"
		}
		fmt.Fprintf(tw, "%s\t%s-%s\t%s\t%s\t%s\n", v.ID, v.StartTime, v.StopTime, repeat, v.Status, v.Summary)
	}
	_ = tw.Flush()
}

func printSnapshot(w io.Writer, snap player.Snapshot) {
	state := "stopped"
	if snap.IsPlaying {
		state = "playing"
	}

	if snap.CurrentSong == nil {
		fmt.Fprintf(w, "%s, nothing selected\n", state)
	} else {
		fmt.Fprintf(w, "%s #%d %q\n", state, snap.CurrentIndex, snap.CurrentSong.Title)
		if snap.Duration > 0 {
			fmt.Fprintf(w, "  %s / %s\n", formatSeconds(snap.Progress), formatSeconds(snap.Duration))
		}
	}
	fmt.Fprintf(w, "volume %d, shuffle %s\n", snap.Volume, onOff(snap.ShuffleEnabled))
}

func printHealth(w io.Writer, h handlers.HealthResponse) {
	tw := newTable(w)
	fmt.Fprintf(tw, "status\t%s\n", h.Status)
	fmt.Fprintf(tw, "version\t%s\n", h.Version)
	fmt.Fprintf(tw, "uptime\t%s\n", h.Uptime)
	fmt.Fprintf(tw, "database\t%s\n", h.Database)
	fmt.Fprintf(tw, "songs\t%d\n", h.Songs)
	fmt.Fprintf(tw, "schedules\t%d\n", h.Schedules)
	fmt.Fprintf(tw, "playing\t%v\n", h.Playing)
	fmt.Fprintf(tw, "players\t%d\n", h.PlayersOnline)
	_ = tw.Flush()
}

func formatSeconds(s float64) string {
	total := int(s)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
