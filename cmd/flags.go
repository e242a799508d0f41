package cmd

import "github.com/urfave/cli"

var (
	configPath string
	dbPath     string

	// storeFlags are shared by every command that touches the event
	// database.
	storeFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "config, C",
			Usage:       "path to the config file (default: per-user config dir)",
			Destination: &configPath,
		},
		cli.StringFlag{
			Name:        "db, D",
			Usage:       "path to the event database (default: from config)",
			Destination: &dbPath,
		},
	}
)

var (
	tickSeconds   int
	leadMinutes   int
	metricsListen string

	daemonFlags = append([]cli.Flag{
		cli.IntFlag{
			Name:        "tick, t",
			Usage:       "seconds between scheduler ticks (default: 60)",
			Destination: &tickSeconds,
		},
		cli.IntFlag{
			Name:        "lead, l",
			Usage:       "minutes of heads-up before an event is due (default: 10)",
			Destination: &leadMinutes,
		},
		cli.StringFlag{
			Name:        "metrics, M",
			Usage:       "listen address for /metrics (default: disabled)",
			Destination: &metricsListen,
		},
	}, storeFlags...)
)

var (
	eventName       string
	eventMessage    string
	eventDate       string
	eventRecurrence string

	createFlags = append([]cli.Flag{
		cli.StringFlag{
			Name:        "name, n",
			Usage:       "event name, shown as the notification title",
			Destination: &eventName,
		},
		cli.StringFlag{
			Name:        "message, m",
			Usage:       "event message, shown as the notification body",
			Destination: &eventMessage,
		},
		cli.StringFlag{
			Name:        "date, d",
			Usage:       "event date as \"dd/mm/yyyy hh:mm\" in local time",
			Destination: &eventDate,
		},
		cli.StringFlag{
			Name:        "recurrence, r",
			Usage:       "one of once, daily, weekly, monthly (default: once)",
			Value:       "once",
			Destination: &eventRecurrence,
		},
	}, storeFlags...)
)

var (
	eventID int64

	updateFlags = append([]cli.Flag{
		cli.Int64Flag{
			Name:        "id, i",
			Usage:       "id of the event to update",
			Destination: &eventID,
		},
		cli.StringFlag{
			Name:        "name, n",
			Usage:       "new event name (default: unchanged)",
			Destination: &eventName,
		},
		cli.StringFlag{
			Name:        "message, m",
			Usage:       "new event message (default: unchanged)",
			Destination: &eventMessage,
		},
		cli.StringFlag{
			Name:        "date, d",
			Usage:       "new event date as \"dd/mm/yyyy hh:mm\" (default: unchanged)",
			Destination: &eventDate,
		},
		cli.StringFlag{
			Name:        "recurrence, r",
			Usage:       "new recurrence (default: unchanged)",
			Destination: &eventRecurrence,
		},
	}, storeFlags...)
)

var (
	forceDelete bool

	deleteFlags = append([]cli.Flag{
		cli.Int64Flag{
			Name:        "id, i",
			Usage:       "id of the event to delete",
			Destination: &eventID,
		},
		cli.BoolFlag{
			Name:        "force, f",
			Usage:       "skip the confirmation prompt (default: false)",
			Destination: &forceDelete,
		},
	}, storeFlags...)
)
