package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	speakable "github.com/goliatone/go-speakable"
)

type denominatorFlag struct {
	items []int
}

func (f *denominatorFlag) String() string {
	parts := make([]string, len(f.items))
	for i, d := range f.items {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

func (f *denominatorFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("invalid denominator %q: %w", part, err)
		}
		f.items = append(f.items, d)
	}
	return nil
}

func main() {
	var (
		mode       = flag.String("mode", "pronounce", "pronounce, nice, time, date, datetime, year, duration, relative or join")
		locale     = flag.String("locale", "", "locale code, empty for the default")
		places     = flag.Int("places", 2, "fractional digits to speak")
		longScale  = flag.Bool("long-scale", false, "name large numbers on the long scale")
		ordinal    = flag.Bool("ordinal", false, "render ordinal words")
		scientific = flag.Bool("scientific", false, "force scientific notation")
		digital    = flag.Bool("digital", false, "compact symbolic output instead of speech")
		use24Hour  = flag.Bool("24h", false, "24-hour clock")
		useAmPm    = flag.Bool("ampm", false, "append the am/pm marker")
		now        = flag.String("now", "", "reference instant (RFC 3339) for dates and relative output")
	)
	var denominators denominatorFlag
	flag.Var(&denominators, "denominators", "comma-separated candidate denominators for nice fractions")
	flag.Parse()

	options := []speakable.Option{speakable.WithPlaces(*places)}
	if *locale != "" {
		options = append(options, speakable.WithLocale(*locale))
	}
	if *longScale {
		options = append(options, speakable.WithScale(speakable.LongScale))
	}
	if *ordinal {
		options = append(options, speakable.AsOrdinal())
	}
	if *scientific {
		options = append(options, speakable.AsScientific())
	}
	if *digital {
		options = append(options, speakable.Digital())
	}
	if *use24Hour {
		options = append(options, speakable.With24Hour())
	}
	if *useAmPm {
		options = append(options, speakable.WithAmPm())
	}
	if len(denominators.items) > 0 {
		options = append(options, speakable.WithDenominators(denominators.items...))
	}
	if *now != "" {
		instant, err := time.Parse(time.RFC3339, *now)
		if err != nil {
			fail(fmt.Errorf("parse -now: %w", err))
		}
		options = append(options, speakable.WithNow(instant))
	}

	if err := run(*mode, flag.Args(), options); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "speakable:", err)
	os.Exit(1)
}

func run(mode string, args []string, options []speakable.Option) error {
	if len(args) == 0 {
		return errors.New("a value argument is required")
	}

	switch mode {
	case "pronounce", "nice":
		n, err := speakable.ParseNumeral(args[0])
		if err != nil {
			return err
		}
		var out speakable.Rendering
		if mode == "pronounce" {
			out, err = speakable.PronounceNumber(n, options...)
		} else {
			out, err = speakable.NiceNumber(n, options...)
		}
		if err != nil {
			return err
		}
		if out.Warning != nil {
			fmt.Fprintln(os.Stderr, out.Warning)
		}
		fmt.Println(out.Text)
		return nil

	case "time", "date", "datetime", "year", "relative":
		instant, err := time.Parse(time.RFC3339, args[0])
		if err != nil {
			return fmt.Errorf("parse instant: %w", err)
		}
		var out string
		switch mode {
		case "time":
			out, err = speakable.NiceTime(instant, options...)
		case "date":
			out, err = speakable.NiceDate(instant, options...)
		case "datetime":
			out, err = speakable.NiceDateTime(instant, options...)
		case "year":
			out, err = speakable.NiceYear(instant, options...)
		default:
			out, err = speakable.NiceRelativeTime(instant, options...)
		}
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil

	case "duration":
		span, err := time.ParseDuration(args[0])
		if err != nil {
			return fmt.Errorf("parse duration: %w", err)
		}
		out, err := speakable.NiceDuration(span, options...)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil

	case "join":
		items := make([]any, len(args))
		for i, arg := range args {
			items[i] = arg
		}
		fmt.Println(speakable.JoinList(items, "and"))
		return nil
	}
	return fmt.Errorf("unknown mode %q", mode)
}
