package intent

import "regexp"

var placeholderRE = regexp.MustCompile(`\{([A-Za-z]+)\}`)

// render fills the catalogue placeholders in tpl. {seat} asks the recommender and is
// only computed when the template needs it
func (e *Engine) render(tpl string, en Entities, ctx Context) string {
	if tpl == "" {
		return ""
	}
	return placeholderRE.ReplaceAllStringFunc(tpl, func(m string) string {
		switch m[1 : len(m)-1] {
		case "name":
			return en.Name
		case "seatNumber":
			return en.SeatNumber
		case "otp":
			return en.OTP
		case "assistance":
			return en.Assistance
		case "seat":
			return Recommend(e.pack.Seats, en)
		case "help":
			return e.pack.HelpFor(string(ctx))
		}
		return m
	})
}

// respond turns a verdict into the spoken response and the action. Intents with a
// seat or row preference force it onto a copy of the entities used for rendering, so
// the offer and the SET_SEAT value name the same seat; the returned entities are
// what extraction found
func (e *Engine) respond(v verdict, en Entities, ctx Context) (Entities, string, Action) {
	it, ok := e.pack.Lookup(string(v.intent))
	if !ok {
		return en, e.render(e.pack.Unknown, en, ctx), Action{Type: ActionNone}
	}
	forced := en
	if it.Prefer.Seat != "" {
		forced.SeatPreference = it.Prefer.Seat
	}
	if it.Prefer.Row != "" {
		forced.RowPreference = it.Prefer.Row
	}

	present := it.Requires == "" || hasEntity(en, it.Requires)
	response := it.Response
	if !present && it.Missing != "" {
		response = it.Missing
	}

	act := Action{Type: ActionType(it.Action.Type)}
	if act.Type == ActionNone {
		return en, e.render(response, forced, ctx), act
	}
	act.Target = it.Action.Target
	value := it.Action.Value
	if !present && it.Action.Missing != "" {
		value = it.Action.Missing
	}
	act.Value = e.render(value, forced, ctx)
	return en, e.render(response, forced, ctx), act
}

func hasEntity(en Entities, key string) bool {
	switch key {
	case "name":
		return en.Name != ""
	case "seatNumber":
		return en.SeatNumber != ""
	case "otp":
		return en.OTP != ""
	case "assistance":
		return en.Assistance != ""
	case "seatPreference":
		return en.SeatPreference != ""
	case "rowPreference":
		return en.RowPreference != ""
	}
	return false
}
