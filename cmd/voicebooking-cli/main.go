// Command voicebooking-cli runs the booking conversation in a terminal: each line typed
// stands in for one recognized utterance and each reply is printed instead of spoken
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"voicebooking/internal/core/catalogue"
	"voicebooking/internal/core/dialogue"
	"voicebooking/internal/core/intent"
	"voicebooking/internal/platform/config"
	"voicebooking/internal/platform/logger"
	"voicebooking/internal/services/api"
	convdomain "voicebooking/internal/services/conversation/domain"
	convsvc "voicebooking/internal/services/conversation/service"
)

const quit = "/quit"

func main() {
	cataloguePath := flag.String("catalogue", "", "intent catalogue yaml overriding the embedded one")
	asJSON := flag.Bool("json", false, "print each reply as a JSON line")
	flag.Parse()

	// logs go to stderr so they never interleave with the dialogue
	opt := logger.FromEnv()
	opt.Writer = os.Stderr
	opt.Component = "cli"
	logger.Init(opt)
	l := logger.Get()

	engine, err := loadEngine(*cataloguePath)
	if err != nil {
		l.Fatal().Err(err).Msg("loading intent catalogue")
	}

	mods := api.Build(api.Options{Config: config.New().Prefix("VB_API_")})
	conv := convsvc.New(engine, mods.Bookings, mods.Payments, convsvc.Options{})

	loop := dialogue.New(dialogue.Config{}, dialogue.WithObserver(func(tr dialogue.Transition) {
		l.Debug().Str("from", string(tr.From)).Str("to", string(tr.To)).Str("reason", tr.Reason).Msg("dialogue")
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := converse(ctx, os.Stdin, os.Stdout, conv, loop, *asJSON); err != nil {
		l.Error().Err(err).Msg("conversation ended")
		stop()
		os.Exit(1)
	}
}

func loadEngine(path string) (*intent.Engine, error) {
	if path == "" {
		return intent.Default(), nil
	}
	pack, err := catalogue.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return intent.New(pack)
}

// converse reads utterances from in until the booking is paid, input ends or the
// caller types /quit. Every line walks the loop through listening, processing and speaking
func converse(ctx context.Context, in io.Reader, out io.Writer, conv *convsvc.Conversation, loop *dialogue.Loop, asJSON bool) error {
	emit := func(r convdomain.Reply) error {
		if asJSON {
			return json.NewEncoder(out).Encode(r)
		}
		_, err := fmt.Fprintf(out, "[%s] %s\n", r.Step, r.Say)
		return err
	}

	if err := emit(conv.Welcome()); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for ctx.Err() == nil {
		loop.Start()
		if !asJSON {
			fmt.Fprint(out, "> ")
		}
		if !sc.Scan() {
			loop.Cancel()
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == quit {
			loop.Cancel()
			return nil
		}
		if line == "" {
			loop.Cancel()
			continue
		}

		loop.Heard()
		r := conv.Handle(ctx, line)
		loop.Respond()
		err := emit(r)
		loop.DoneSpeaking()
		if err != nil {
			return err
		}
		if r.Done {
			return nil
		}
	}
	return nil
}
