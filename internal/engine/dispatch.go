package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Run reads whitespace-separated commands from r, one per line, until EOF,
// and writes the response for each to w. A line that does not parse as one
// of the five known verbs with well-formed unsigned integer arguments is
// skipped rather than treated as fatal, so one bad line never aborts an
// otherwise-good run.
func (e *Engine) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		e.dispatch(fields, bw)
	}
	return scanner.Err()
}

func (e *Engine) dispatch(fields []string, w *bufio.Writer) {
	switch fields[0] {
	case "aggiungi-stazione":
		e.handleAddStation(fields[1:], w)
	case "demolisci-stazione":
		e.handleRemoveStation(fields[1:], w)
	case "aggiungi-auto":
		e.handleAddVehicle(fields[1:], w)
	case "rottama-auto":
		e.handleRemoveVehicle(fields[1:], w)
	case "pianifica-percorso":
		e.handlePlanRoute(fields[1:], w)
	}
}

func (e *Engine) handleAddStation(args []string, w *bufio.Writer) {
	d, autonomies, ok := parseAddStationArgs(args)
	if !ok {
		return
	}
	if err := e.AddStation(d, autonomies); err != nil {
		fmt.Fprintln(w, "non aggiunta")
		return
	}
	fmt.Fprintln(w, "aggiunta")
}

func (e *Engine) handleRemoveStation(args []string, w *bufio.Writer) {
	if len(args) != 1 {
		return
	}
	d, ok := parseUint32(args[0])
	if !ok {
		return
	}
	if err := e.RemoveStation(d); err != nil {
		fmt.Fprintln(w, "non demolita")
		return
	}
	fmt.Fprintln(w, "demolita")
}

func (e *Engine) handleAddVehicle(args []string, w *bufio.Writer) {
	d, a, ok := parseTwoUint32(args)
	if !ok {
		return
	}
	if err := e.AddVehicle(d, a); err != nil {
		fmt.Fprintln(w, "non aggiunta")
		return
	}
	fmt.Fprintln(w, "aggiunta")
}

func (e *Engine) handleRemoveVehicle(args []string, w *bufio.Writer) {
	d, a, ok := parseTwoUint32(args)
	if !ok {
		return
	}
	if err := e.RemoveVehicle(d, a); err != nil {
		fmt.Fprintln(w, "non rottamata")
		return
	}
	fmt.Fprintln(w, "rottamata")
}

func (e *Engine) handlePlanRoute(args []string, w *bufio.Writer) {
	d1, d2, ok := parseTwoUint32(args)
	if !ok {
		return
	}
	path, err := e.PlanRoute(d1, d2)
	if err != nil {
		fmt.Fprintln(w, "nessun percorso")
		return
	}
	for i, d := range path {
		if i > 0 {
			w.WriteByte(' ')
		}
		fmt.Fprintf(w, "%d", d)
	}
	w.WriteByte('\n')
}

func parseUint32(s string) (uint32, bool) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

func parseTwoUint32(args []string) (uint32, uint32, bool) {
	if len(args) != 2 {
		return 0, 0, false
	}
	a, ok := parseUint32(args[0])
	if !ok {
		return 0, 0, false
	}
	b, ok := parseUint32(args[1])
	if !ok {
		return 0, 0, false
	}
	return a, b, true
}

func parseAddStationArgs(args []string) (uint32, []uint32, bool) {
	if len(args) < 2 {
		return 0, nil, false
	}
	d, ok := parseUint32(args[0])
	if !ok {
		return 0, nil, false
	}
	k, ok := parseUint32(args[1])
	if !ok {
		return 0, nil, false
	}
	rest := args[2:]
	if uint64(len(rest)) != uint64(k) {
		return 0, nil, false
	}
	autonomies := make([]uint32, 0, k)
	for _, tok := range rest {
		a, ok := parseUint32(tok)
		if !ok {
			return 0, nil, false
		}
		autonomies = append(autonomies, a)
	}
	return d, autonomies, true
}
