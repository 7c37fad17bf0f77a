package main

import (
	"github.com/spf13/cobra"
	"github.com/username/school-bells/internal/daemon"
)

func watchCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the schedule and announce every bell",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			var onBell func(daemon.Event)
			if !quiet {
				onBell = func(ev daemon.Event) {
					if ev.Period < 0 {
						outPrintf("🔔 %s  dismissal\n", ev.Time.Format("15:04"))
						return
					}
					outPrintf("🔔 %s  %s (%s)\n", ev.Time.Format("15:04"), ev.Label, ev.Range)
				}
			}

			watcher := daemon.NewWatcher(app.manager, app.cfg.Watch.GetInterval(), onBell, logger)
			return watcher.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only log bells, do not print them")

	return cmd
}
