package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	agent "github.com/ERRORIK404/Keypad_Calculator/internal/agent_application"
	conf "github.com/ERRORIK404/Keypad_Calculator/pkg/config"
)

func main() {
	cfg, err := conf.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	addr := flag.String("addr", cfg.GRPCAddr, "keypad service address")
	token := flag.String("token", os.Getenv("CALC_TOKEN"), "bearer token")
	showHistory := flag.Bool("history", false, "print the history after the run")
	clearHistory := flag.Bool("clear-history", false, "clear the history before the run")
	replay := flag.Int("replay", -1, "load history entry N as the current operand")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [keys...]\n  keys example: 12+3*4=\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	conn, err := agent.Dial(*addr)
	if err != nil {
		log.Fatalf("dial %s: %v", *addr, err)
	}
	defer conn.Close()

	a := agent.New(conn, os.Stdout)
	ctx := agent.WithToken(context.Background(), *token)

	if *clearHistory {
		if err := a.ClearHistory(ctx); err != nil {
			log.Fatal(err)
		}
	}
	if *replay >= 0 {
		if err := a.Replay(ctx, *replay); err != nil {
			log.Fatal(err)
		}
	}
	if script := strings.Join(flag.Args(), " "); script != "" {
		if err := a.Run(ctx, script); err != nil {
			log.Fatal(err)
		}
	}
	if *showHistory {
		if err := a.PrintHistory(ctx); err != nil {
			log.Fatal(err)
		}
	}
}
