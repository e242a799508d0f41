package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/notifyme/notifyme/internal/event"
)

func create(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if eventName == "" {
		return printErrWithCmdHelp(ctx, errors.New("event name is required"))
	}
	if eventDate == "" {
		return printErrWithCmdHelp(ctx, errors.New("event date is required"))
	}
	at, err := parseEventDate(eventDate)
	if err != nil {
		return printErrWithCmdHelp(ctx, err)
	}
	rec, err := event.ParseRecurrence(eventRecurrence)
	if err != nil {
		return printErrWithCmdHelp(ctx, err)
	}

	s, err := openStore()
	if err != nil {
		printRuntimeErr(ctx, "create", "open_store", err)
		return nil
	}
	defer s.Close()

	id, err := s.Create(context.Background(), eventName, eventMessage, rec, at)
	if err != nil {
		printRuntimeErr(ctx, "create", "insert", err)
		return nil
	}
	fmt.Printf("Created event %d: %s at %s (%s)\n",
		id, eventName, at.Format("2006-01-02 15:04"), rec)
	return nil
}

func today(ctx *cli.Context) error {
	s, err := openStore()
	if err != nil {
		printRuntimeErr(ctx, "today", "open_store", err)
		return nil
	}
	defer s.Close()

	events, err := s.ListDay(context.Background(), time.Now())
	if err != nil {
		printRuntimeErr(ctx, "today", "list_day", err)
		return nil
	}
	printEvents(events, "No events today")
	return nil
}

func list(ctx *cli.Context) error {
	s, err := openStore()
	if err != nil {
		printRuntimeErr(ctx, "list", "open_store", err)
		return nil
	}
	defer s.Close()

	events, err := s.List(context.Background())
	if err != nil {
		printRuntimeErr(ctx, "list", "list", err)
		return nil
	}
	printEvents(events, "No events found")
	return nil
}

func printEvents(events []event.Event, emptyMsg string) {
	if len(events) == 0 {
		fmt.Println(emptyMsg)
		return
	}
	for i, ev := range events {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("[%d] %s\n", ev.ID, ev)
	}
}

func update(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if eventID == 0 {
		return printErrWithCmdHelp(ctx, errors.New("event id is required"))
	}

	s, err := openStore()
	if err != nil {
		printRuntimeErr(ctx, "update", "open_store", err)
		return nil
	}
	defer s.Close()

	ev, err := s.Get(context.Background(), eventID)
	if err != nil {
		printRuntimeErr(ctx, "update", "get", err)
		return nil
	}
	if eventName != "" {
		ev.Name = eventName
	}
	if eventMessage != "" {
		ev.Message = eventMessage
	}
	if eventDate != "" {
		at, err := parseEventDate(eventDate)
		if err != nil {
			return printErrWithCmdHelp(ctx, err)
		}
		ev.OccurrenceDate = at
	}
	if eventRecurrence != "" {
		rec, err := event.ParseRecurrence(eventRecurrence)
		if err != nil {
			return printErrWithCmdHelp(ctx, err)
		}
		ev.Recurrence = rec
	}

	if err := s.Update(context.Background(), ev); err != nil {
		printRuntimeErr(ctx, "update", "update", err)
		return nil
	}
	fmt.Printf("Updated event %d\n", ev.ID)
	return nil
}

func remove(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if eventID == 0 {
		return printErrWithCmdHelp(ctx, errors.New("event id is required"))
	}
	if !confirm(fmt.Sprintf("Delete event %d?", eventID), forceDelete) {
		return nil
	}

	s, err := openStore()
	if err != nil {
		printRuntimeErr(ctx, "delete", "open_store", err)
		return nil
	}
	defer s.Close()

	if err := s.SoftDelete(context.Background(), eventID); err != nil {
		printRuntimeErr(ctx, "delete", "soft_delete", err)
		return nil
	}
	fmt.Printf("Deleted event %d\n", eventID)
	return nil
}
