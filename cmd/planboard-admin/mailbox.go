package main

import (
	"context"
	"flag"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/planboard/planboard/internal/domain/model"
	apperrors "github.com/planboard/planboard/internal/errors"
	"github.com/planboard/planboard/internal/util"
)

const mailboxCommandTimeout = 30 * time.Second

type requestOptions struct {
	Email  string
	Reason string
}

func parseRequestFlags(args []string) (requestOptions, error) {
	fs := flag.NewFlagSet("request", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts requestOptions
	fs.StringVar(&opts.Email, "email", "", "Email address requesting access (required)")
	fs.StringVar(&opts.Reason, "reason", "", "Optional reason for the request")

	if err := fs.Parse(args); err != nil {
		return requestOptions{}, err
	}
	return opts, nil
}

func runRequest(cmdCtx *commandContext, args []string) error {
	opts, err := parseRequestFlags(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, mailboxCommandTimeout)
	defer cancel()

	c, cleanup, err := buildContainer(cmdCtx)
	if err != nil {
		return err
	}
	defer cleanup()

	if submitErr := c.Mailbox.Submit(ctx, opts.Email, opts.Reason); submitErr != nil {
		return submitErr
	}
	return writef(os.Stdout, "Access request submitted for %s\n", opts.Email)
}

func runInbox(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("inbox", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts loginOptions
	addLoginFlags(fs, &opts)
	unreadOnly := fs.Bool("unread", false, "Show only unread requests")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := resolveLoginOptions(&opts); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, mailboxCommandTimeout)
	defer cancel()

	c, cleanup, err := buildContainer(cmdCtx)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, loginErr := loginAsAdmin(ctx, c, opts); loginErr != nil {
		return loginErr
	}

	requests, err := c.Mailbox.List(ctx)
	if err != nil {
		return err
	}
	return printInbox(requests, *unreadOnly)
}

func printInbox(requests []model.AccessRequest, unreadOnly bool) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "ID\tEMAIL\tREASON\tSUBMITTED\tAGE\tREAD\n"); err != nil {
		return err
	}

	now := time.Now()
	shown := 0
	for _, req := range requests {
		if unreadOnly && req.Read {
			continue
		}
		shown++
		read := "no"
		if req.Read {
			read = "yes"
		}
		if err := writef(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			req.ID,
			req.RequesterEmail,
			req.Reason,
			req.SubmittedAt.Format(time.RFC3339),
			util.FormatRelativeAge(now, req.SubmittedAt),
			read,
		); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return writef(os.Stdout, "\n%d request(s)\n", shown)
}

func runMarkRead(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("mark-read", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts loginOptions
	addLoginFlags(fs, &opts)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := resolveLoginOptions(&opts); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, mailboxCommandTimeout)
	defer cancel()

	c, cleanup, err := buildContainer(cmdCtx)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, loginErr := loginAsAdmin(ctx, c, opts); loginErr != nil {
		return loginErr
	}

	if markErr := c.Mailbox.MarkAllRead(ctx); markErr != nil {
		return markErr
	}
	return writef(os.Stdout, "All access requests marked read\n")
}

func runRemove(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("remove", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts loginOptions
	addLoginFlags(fs, &opts)
	idArg := fs.String("id", "", "Request id to remove (required)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *idArg == "" {
		return apperrors.ValidationField("id", "Request id is required")
	}
	id, err := strconv.ParseInt(*idArg, 10, 64)
	if err != nil {
		return apperrors.ValidationField("id", "Request id must be numeric")
	}
	if resolveErr := resolveLoginOptions(&opts); resolveErr != nil {
		return resolveErr
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, mailboxCommandTimeout)
	defer cancel()

	c, cleanup, err := buildContainer(cmdCtx)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, loginErr := loginAsAdmin(ctx, c, opts); loginErr != nil {
		return loginErr
	}

	if removeErr := c.Mailbox.Remove(ctx, id); removeErr != nil {
		return removeErr
	}
	return writef(os.Stdout, "Removed access request %d\n", id)
}
