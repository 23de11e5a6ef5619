package intent

import (
	"strconv"
	"strings"
)

// Recommend picks a seat from pool honouring the seat and row preferences in e.
// Letters map A window, B middle, C aisle; rows up to 3 are front, 10 and beyond are back.
// When nothing survives both filters the first pool seat is returned, so the answer is
// never empty for a non-empty pool
func Recommend(pool []string, e Entities) string {
	if len(pool) == 0 {
		return ""
	}
	cands := pool
	if suffix := seatLetter(e.SeatPreference); suffix != "" {
		cands = filterSeats(cands, func(s string) bool { return strings.HasSuffix(s, suffix) })
	}
	switch e.RowPreference {
	case "front":
		cands = filterSeats(cands, func(s string) bool { return seatRow(s) <= 3 })
	case "back":
		cands = filterSeats(cands, func(s string) bool { return seatRow(s) >= 10 })
	}
	if len(cands) == 0 {
		return pool[0]
	}
	return cands[0]
}

func seatLetter(pref string) string {
	switch pref {
	case "window":
		return "A"
	case "middle":
		return "B"
	case "aisle":
		return "C"
	}
	return ""
}

func seatRow(seat string) int {
	n, _ := strconv.Atoi(strings.TrimRight(seat, "ABCabc"))
	return n
}

func filterSeats(in []string, keep func(string) bool) []string {
	var out []string
	for _, s := range in {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
