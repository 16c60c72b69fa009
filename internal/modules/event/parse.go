// README: Event-list loader for the plain-text format ("<t> <Kind> <id> ...").
package event

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"dispatchsim/internal/modules/driver"
	"dispatchsim/internal/modules/rider"
	"dispatchsim/internal/types"
)

var (
	ErrMalformedLine = errors.New("malformed event line")
	ErrUnknownKind   = errors.New("unknown event kind")
)

// LoadFile opens path and parses it with ParseList.
func LoadFile(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseList(f)
}

// ParseList reads one request per line, skipping blanks and '#' comments:
//
//	<t> DriverRequest <id> <row,col> <speed>
//	<t> RiderRequest <id> <row,col> <row,col> <patience>
//
// Events are returned in input order. Each driver id and each rider id may
// appear on one line only.
func ParseList(r io.Reader) ([]Event, error) {
	var events []Event
	drivers := map[string]bool{}
	riders := map[string]bool{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := parseLine(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := claimID(e, drivers, riders); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		events = append(events, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func parseLine(tokens []string) (Event, error) {
	if len(tokens) < 2 {
		return Event{}, ErrMalformedLine
	}
	ts, err := strconv.Atoi(tokens[0])
	if err != nil || ts < 0 {
		return Event{}, fmt.Errorf("timestamp %q: %w", tokens[0], ErrMalformedLine)
	}

	switch tokens[1] {
	case "DriverRequest":
		if len(tokens) != 5 {
			return Event{}, fmt.Errorf("DriverRequest wants 5 fields, got %d: %w", len(tokens), ErrMalformedLine)
		}
		loc, err := types.ParseLocation(tokens[3])
		if err != nil {
			return Event{}, err
		}
		speed, err := strconv.Atoi(tokens[4])
		if err != nil {
			return Event{}, fmt.Errorf("speed %q: %w", tokens[4], ErrMalformedLine)
		}
		d, err := driver.New(tokens[2], loc, speed)
		if err != nil {
			return Event{}, err
		}
		return DriverRequest(ts, d), nil

	case "RiderRequest":
		if len(tokens) != 6 {
			return Event{}, fmt.Errorf("RiderRequest wants 6 fields, got %d: %w", len(tokens), ErrMalformedLine)
		}
		origin, err := types.ParseLocation(tokens[3])
		if err != nil {
			return Event{}, err
		}
		dest, err := types.ParseLocation(tokens[4])
		if err != nil {
			return Event{}, err
		}
		patience, err := strconv.Atoi(tokens[5])
		if err != nil {
			return Event{}, fmt.Errorf("patience %q: %w", tokens[5], ErrMalformedLine)
		}
		r, err := rider.New(tokens[2], origin, dest, patience)
		if err != nil {
			return Event{}, err
		}
		return RiderRequest(ts, r), nil

	default:
		return Event{}, fmt.Errorf("%q: %w", tokens[1], ErrUnknownKind)
	}
}

func claimID(e Event, drivers, riders map[string]bool) error {
	seen, id := riders, ""
	switch e.Kind {
	case KindDriverRequest:
		seen, id = drivers, e.Driver.ID
	case KindRiderRequest:
		id = e.Rider.ID
	}
	if seen[id] {
		return fmt.Errorf("duplicate %s id %q: %w", e.Kind, id, ErrMalformedLine)
	}
	seen[id] = true
	return nil
}
