// Package cmd implements the notifyme command-line interface: the
// daemon command that runs the scheduling loop, and the CRUD commands
// that manage reminder events in the shared store.
package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"
)

// BuildArgs carries ldflags-injected build metadata.
type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:                  "notifyme",
		HelpName:              "notifyme",
		Usage:                 "A desktop reminder daemon.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "notifyme <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          usageErrorCallback,
		Commands: []cli.Command{
			{
				Name:               "daemon",
				Usage:              "run the reminder scheduler until interrupted",
				Action:             daemon,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        DaemonDescription,
				Flags:              daemonFlags,
			},
			{
				Name:                   "create",
				Aliases:                []string{"c"},
				Usage:                  "create a reminder event",
				Action:                 create,
				OnUsageError:           usageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            CreateDescription,
				UseShortOptionHandling: true,
				Flags:                  createFlags,
			},
			{
				Name:               "today",
				Aliases:            []string{"t"},
				Usage:              "show today's events",
				Action:             today,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        TodayDescription,
				Flags:              storeFlags,
			},
			{
				Name:               "list",
				Aliases:            []string{"l"},
				Usage:              "list all active events",
				Action:             list,
				OnUsageError:       usageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        ListDescription,
				Flags:              storeFlags,
			},
			{
				Name:                   "update",
				Aliases:                []string{"u"},
				Usage:                  "update an existing event",
				Action:                 update,
				OnUsageError:           usageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            UpdateDescription,
				UseShortOptionHandling: true,
				Flags:                  updateFlags,
			},
			{
				Name:                   "delete",
				Aliases:                []string{"d"},
				Usage:                  "soft-delete an event",
				Action:                 remove,
				OnUsageError:           usageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            DeleteDescription,
				UseShortOptionHandling: true,
				Flags:                  deleteFlags,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints the installed version of notifyme",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             getVersion,
			},
		},
		HideHelp:    true,
		HideVersion: true,
	}
	versionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
