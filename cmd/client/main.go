package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/remiges-tech/numbername/internal/webservices/numbername"
	"github.com/remiges-tech/numbername/wscutils"
)

type nameResult struct {
	Status   string                  `json:"status"`
	Data     numbername.NameResponse `json:"data"`
	Messages []wscutils.ErrorMessage `json:"messages"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "The base URL of the numbername server")
	mode := flag.String("mode", numbername.ModeKata, "Conversion mode (kata or full)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: client [-url URL] [-mode kata|full] NUMBER...")
		os.Exit(2)
	}

	client := resty.New().SetBaseURL(*baseURL)

	failed := false
	for _, arg := range flag.Args() {
		name, err := getName(client, arg, *mode)
		if err != nil {
			log.Printf("%s: %v", arg, err)
			failed = true
			continue
		}
		fmt.Printf("%s: %s\n", arg, name)
	}
	if failed {
		os.Exit(1)
	}
}

func getName(client *resty.Client, number, mode string) (string, error) {
	var result nameResult
	resp, err := client.R().
		SetPathParam("number", number).
		SetQueryParam("mode", mode).
		SetResult(&result).
		SetError(&result).
		Get("/numbername/{number}")
	if err != nil {
		return "", err
	}
	if resp.IsError() || result.Status != wscutils.SuccessStatus {
		return "", fmt.Errorf("request failed with status %d: %s", resp.StatusCode(), describe(result.Messages))
	}
	return result.Data.Name, nil
}

func describe(messages []wscutils.ErrorMessage) string {
	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		part := m.ErrCode
		if m.Field != nil {
			part = *m.Field + ": " + part
		}
		if len(m.Vals) > 0 {
			part += " (" + strings.Join(m.Vals, ", ") + ")"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}
