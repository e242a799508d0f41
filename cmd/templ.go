package cmd

const DESCRIPTION = `
notifyme keeps reminder events in a local SQLite database and fires a
desktop notification when each one comes due, with a second heads-up
alert ten minutes ahead. Recurring events move themselves forward after
they fire.`

const HELP_TEMPL = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}{{end}}
{{.Description}}{{if .VisibleCommands}}
Commands:{{range .VisibleCategories}}{{if .Name}}

{{.Name}}:{{range .VisibleCommands}}
  {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{else}}{{range .VisibleCommands}}
{{"\t"}}{{index .Names 0}}{{"\t:\t"}}{{.Usage}}{{end}}{{end}}{{end}}{{end}}{{if .VisibleFlags}}{{end}}

Use "{{.HelpName}} help <command>" for more information about any command.

`

const CMD_HELP_TEMPL = `{{if .Description}}{{.Description}}{{else}}{{.HelpName}} - {{.Usage}}

{{end}}Usage:
        {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[arguments...]{{end}}{{if .VisibleFlags}}

Supported Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

`

const DaemonDescription = `Runs the scheduling loop in the foreground: every tick it looks up
events due now or in ten minutes, shows a desktop notification for
each, and advances recurring events to their next occurrence. Stops
cleanly on SIGINT/SIGTERM.`

const CreateDescription = `Creates a reminder event. The date takes the form "dd/mm/yyyy hh:mm"
in local time; recurrence is one of once, daily, weekly or monthly.`

const TodayDescription = `Prints the active events falling on the current local day.`

const ListDescription = `Prints every active (not soft-deleted) event.`

const UpdateDescription = `Rewrites the name, message, date or recurrence of an existing event.
Fields not passed keep their current value.`

const DeleteDescription = `Soft-deletes an event: the row is kept but the scheduler stops
considering it.`
