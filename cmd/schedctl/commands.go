package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"music-scheduler/internal/client"
	"music-scheduler/internal/player"
)

func requireArgs(c *cli.Context, n int, usage string) error {
	if c.NArg() != n {
		return fmt.Errorf("usage: %s %s", c.Command.HelpName, usage)
	}
	return nil
}

func songsCommand() *cli.Command {
	return &cli.Command{
		Name:  "songs",
		Usage: "manage the playlist",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "show the playlist in play order",
				Action: func(c *cli.Context) error {
					lib, err := apiClient(c).Songs(c.Context)
					if err != nil {
						return err
					}
					return output(c, lib, func(w io.Writer) { printLibrary(w, lib) })
				},
			},
			{
				Name:      "add",
				Usage:     "add one YouTube link",
				ArgsUsage: "URL",
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, 1, "URL"); err != nil {
						return err
					}
					song, err := apiClient(c).AddSong(c.Context, c.Args().First())
					if err != nil {
						return err
					}
					return output(c, song, func(w io.Writer) {
						fmt.Fprintf(w, "Added %q (%s)\n", song.Title, song.ID)
					})
				},
			},
			{
				Name:      "bulk",
				Usage:     "add every YouTube link in a file, one per line",
				ArgsUsage: "[FILE|-]",
				Action: func(c *cli.Context) error {
					text, err := readInput(c)
					if err != nil {
						return err
					}
					resp, err := apiClient(c).AddBulk(c.Context, text)
					if err != nil {
						return err
					}
					return output(c, resp, func(w io.Writer) {
						fmt.Fprintf(w, "Added %d songs\n", resp.Added)
						printSongs(w, resp.Songs)
					})
				},
			},
			{
				Name:      "upload",
				Usage:     "upload local audio files",
				ArgsUsage: "FILE...",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return fmt.Errorf("usage: %s FILE...", c.Command.HelpName)
					}
					resp, err := apiClient(c).Upload(c.Context, c.Args().Slice())
					if err != nil {
						return err
					}
					return output(c, resp, func(w io.Writer) {
						fmt.Fprintf(w, "Uploaded %d songs\n", resp.Added)
						printSongs(w, resp.Songs)
					})
				},
			},
			{
				Name:      "rm",
				Aliases:   []string{"remove"},
				Usage:     "remove a song",
				ArgsUsage: "ID",
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, 1, "ID"); err != nil {
						return err
					}
					if err := apiClient(c).RemoveSong(c.Context, c.Args().First()); err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, "Removed")
					return nil
				},
			},
		},
	}
}

// readInput returns the named file, or stdin for "-" or no argument.
func readInput(c *cli.Context) (string, error) {
	name := c.Args().First()
	if name == "" || name == "-" {
		data, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}

func repeatFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "repeat",
		Usage: "repeat daily",
		Value: true,
	}
}

func schedulesCommand() *cli.Command {
	return &cli.Command{
		Name:  "schedules",
		Usage: "manage playback schedules",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "show schedules with their status",
				Action: func(c *cli.Context) error {
					views, err := apiClient(c).Schedules(c.Context)
					if err != nil {
						return err
					}
					return output(c, views, func(w io.Writer) { printSchedules(w, views) })
				},
			},
			{
				Name:      "add",
				Usage:     "add a schedule",
				ArgsUsage: "START STOP",
				Flags:     []cli.Flag{repeatFlag()},
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, 2, "START STOP"); err != nil {
						return err
					}
					view, err := apiClient(c).CreateSchedule(c.Context, client.ScheduleInput{
						StartTime:   c.Args().Get(0),
						StopTime:    c.Args().Get(1),
						RepeatDaily: c.Bool("repeat"),
					})
					if err != nil {
						return err
					}
					return output(c, view, func(w io.Writer) {
						fmt.Fprintf(w, "Created %s %s-%s\n", view.ID, view.StartTime, view.StopTime)
					})
				},
			},
			{
				Name:      "edit",
				Usage:     "change a schedule's window",
				ArgsUsage: "ID START STOP",
				Flags:     []cli.Flag{repeatFlag()},
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, 3, "ID START STOP"); err != nil {
						return err
					}
					view, err := apiClient(c).EditSchedule(c.Context, c.Args().Get(0), client.ScheduleInput{
						StartTime:   c.Args().Get(1),
						StopTime:    c.Args().Get(2),
						RepeatDaily: c.Bool("repeat"),
					})
					if err != nil {
						return err
					}
					return output(c, view, func(w io.Writer) {
						fmt.Fprintf(w, "Updated %s %s-%s\n", view.ID, view.StartTime, view.StopTime)
					})
				},
			},
			{
				Name:      "rm",
				Aliases:   []string{"remove"},
				Usage:     "delete a schedule",
				ArgsUsage: "ID",
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, 1, "ID"); err != nil {
						return err
					}
					if err := apiClient(c).DeleteSchedule(c.Context, c.Args().First()); err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, "Deleted")
					return nil
				},
			},
			scheduleAction("test", "start a schedule now", (*client.Client).TestSchedule),
			scheduleAction("stop", "stop a schedule now", (*client.Client).StopTest),
		},
	}
}

func playerCommand() *cli.Command {
	return &cli.Command{
		Name:  "player",
		Usage: "control playback",
		Subcommands: []*cli.Command{
			playerAction("status", "show what is playing", (*client.Client).Player),
			playerAction("toggle", "play or pause", (*client.Client).Toggle),
			playerAction("next", "skip to the next song", (*client.Client).Next),
			playerAction("prev", "go back one song", (*client.Client).Previous),
			playerAction("shuffle", "toggle shuffled order", (*client.Client).Shuffle),
			{
				Name:      "play",
				Usage:     "play the song at INDEX of the play order",
				ArgsUsage: "INDEX",
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, 1, "INDEX"); err != nil {
						return err
					}
					index, err := strconv.Atoi(c.Args().First())
					if err != nil || index < 0 {
						return fmt.Errorf("invalid index %q", c.Args().First())
					}
					snap, err := apiClient(c).PlayIndex(c.Context, index)
					if err != nil {
						return err
					}
					return output(c, snap, func(w io.Writer) { printSnapshot(w, snap) })
				},
			},
			{
				Name:      "volume",
				Usage:     "set the volume, 0-100",
				ArgsUsage: "LEVEL",
				Action: func(c *cli.Context) error {
					if err := requireArgs(c, 1, "LEVEL"); err != nil {
						return err
					}
					level, err := strconv.Atoi(c.Args().First())
					if err != nil {
						return fmt.Errorf("invalid volume %q", c.Args().First())
					}
					snap, err := apiClient(c).SetVolume(c.Context, level)
					if err != nil {
						return err
					}
					return output(c, snap, func(w io.Writer) { printSnapshot(w, snap) })
				},
			},
		},
	}
}

func scheduleAction(name, usage string, fn func(*client.Client, context.Context, string) (player.Snapshot, error)) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "ID",
		Action: func(c *cli.Context) error {
			if err := requireArgs(c, 1, "ID"); err != nil {
				return err
			}
			snap, err := fn(apiClient(c), c.Context, c.Args().First())
			if err != nil {
				return err
			}
			return output(c, snap, func(w io.Writer) { printSnapshot(w, snap) })
		},
	}
}

func playerAction(name, usage string, fn func(*client.Client, context.Context) (player.Snapshot, error)) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Action: func(c *cli.Context) error {
			snap, err := fn(apiClient(c), c.Context)
			if err != nil {
				return err
			}
			return output(c, snap, func(w io.Writer) { printSnapshot(w, snap) })
		},
	}
}
