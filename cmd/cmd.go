// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func playerFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "player",
		Aliases: []string{"p"},
		Usage:   "Target player id (defaults to commands.default_player)",
	}
}

func transportFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "transport",
		Usage: "Command transport, \"ws\" or \"http\" (overrides config)",
	}
}

// setupCommand writes a starter configuration file.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create a starter config.toml",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// playlistsCommand lists the library's playlists.
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlists",
		Aliases: []string{"pls"},
		Usage:   "List library playlists",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Playlists,
	}
}

// playlistCommand shows one playlist with its tracks.
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Show a playlist's tracks",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of tracks to return",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Playlist,
	}
}

// playersCommand snapshots live player state from the push stream.
func playersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "players",
		Usage: "List connected players and what they are playing",
		Flags: []cli.Flag{
			configFlag(),
			&cli.DurationFlag{
				Name:  "wait",
				Usage: "How long to listen for state pushes",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Players,
	}
}

// playerCommand holds the transport controls for a single player.
func playerCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "player",
		Usage: "Control a player",
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "Play a playlist on the player",
				Flags: []cli.Flag{
					configFlag(),
					playerFlag(),
					transportFlag(),
					&cli.StringFlag{
						Name:     "playlist",
						Usage:    "Playlist ID to play",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "track",
						Usage: "1-based track number to start at",
					},
					&cli.BoolFlag{
						Name:  "shuffle",
						Usage: "Shuffle the playlist",
					},
				},
				Action: r.PlayerPlay,
			},
			{
				Name:   "pause",
				Usage:  "Toggle pause/resume",
				Flags:  []cli.Flag{configFlag(), playerFlag(), transportFlag()},
				Action: r.PlayerPause,
			},
			{
				Name:   "next",
				Usage:  "Skip to the next track",
				Flags:  []cli.Flag{configFlag(), playerFlag(), transportFlag()},
				Action: r.PlayerNext,
			},
			{
				Name:    "previous",
				Aliases: []string{"prev"},
				Usage:   "Return to the previous track",
				Flags:   []cli.Flag{configFlag(), playerFlag(), transportFlag()},
				Action:  r.PlayerPrevious,
			},
			{
				Name:  "volume",
				Usage: "Set the player's volume (0-100)",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "level",
					},
				},
				Flags:  []cli.Flag{configFlag(), playerFlag(), transportFlag()},
				Action: r.PlayerVolume,
			},
		},
	}
}

// watchCommand follows the push stream and prints state changes.
func watchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Follow player state pushes until interrupted",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Watch,
	}
}

// tuiCommand returns the top-level TUI command for interactive playback control.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive player TUI",
		Flags:   []cli.Flag{configFlag()},
		Action:  r.TUI,
	}
}
