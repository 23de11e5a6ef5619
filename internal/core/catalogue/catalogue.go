// Package catalogue loads the intent catalogue: trigger phrases, response templates,
// actions, per-context help, the seat pool and the spoken number table.
// The embedded intents.yaml is the default pack; LoadFile reads an override from disk
package catalogue

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed intents.yaml
var embedded []byte

// Action types understood by the engine and its consumers
const (
	ActionNavigate       = "NAVIGATE"
	ActionSetName        = "SET_NAME"
	ActionSetSeat        = "SET_SEAT"
	ActionProceedPayment = "PROCEED_PAYMENT"
	ActionVerifyOTP      = "VERIFY_OTP"
	ActionAddAssistance  = "ADD_ASSISTANCE"
	ActionShowHelp       = "SHOW_HELP"
	ActionNone           = "NONE"
)

var actionTypes = map[string]struct{}{
	ActionNavigate: {}, ActionSetName: {}, ActionSetSeat: {}, ActionProceedPayment: {},
	ActionVerifyOTP: {}, ActionAddAssistance: {}, ActionShowHelp: {}, ActionNone: {},
}

// Placeholders allowed in response and action templates
var placeholders = map[string]struct{}{
	"name": {}, "seatNumber": {}, "otp": {}, "assistance": {}, "seat": {}, "help": {},
}

// Entity keys an intent may require
var entityKeys = map[string]struct{}{
	"": {}, "name": {}, "seatNumber": {}, "otp": {}, "assistance": {}, "seatPreference": {}, "rowPreference": {},
}

var placeholderRE = regexp.MustCompile(`\{([A-Za-z]+)\}`)

// Pack is a validated catalogue. Read-only after Load
type Pack struct {
	Version      int               `yaml:"version"`
	Empty        string            `yaml:"empty"`
	Unknown      string            `yaml:"unknown"`
	Help         Help              `yaml:"help"`
	Seats        []string          `yaml:"seats"`
	NumberWords  map[string]string `yaml:"number_words"`
	CommandWords []string          `yaml:"command_words"`
	Intents      []Intent          `yaml:"intents"`

	index map[string]int
}

// Help maps context tags to help text; Default names the fallback entry
type Help struct {
	Default string            `yaml:"default"`
	Texts   map[string]string `yaml:"texts"`
}

// Intent is one catalogue entry
type Intent struct {
	Name     string     `yaml:"name"`
	Phrases  []string   `yaml:"phrases"`
	Requires string     `yaml:"requires"` // entity that selects Response over Missing
	Response string     `yaml:"response"`
	Missing  string     `yaml:"missing"`
	Prefer   Preference `yaml:"prefer"`
	Action   ActionSpec `yaml:"action"`
}

// Preference is forced onto the entities before recommending a seat
type Preference struct {
	Seat string `yaml:"seat"` // window | aisle | middle
	Row  string `yaml:"row"`  // front | back
}

// IsSet reports whether the intent forces any preference
func (p Preference) IsSet() bool { return p.Seat != "" || p.Row != "" }

// ActionSpec is an action template. Missing replaces Value when the required entity is absent
type ActionSpec struct {
	Type    string `yaml:"type"`
	Target  string `yaml:"target"`
	Value   string `yaml:"value"`
	Missing string `yaml:"missing"`
}

// Load parses and validates the embedded pack
func Load() (*Pack, error) {
	p, err := Parse(bytes.NewReader(embedded))
	if err != nil {
		return nil, fmt.Errorf("catalogue: embedded intents.yaml: %w", err)
	}
	return p, nil
}

// MustLoad is Load for process start-up
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

// LoadFile parses and validates a pack from disk
func LoadFile(path string) (*Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalogue: open %q: %w", path, err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("catalogue: %q: %w", path, err)
	}
	return p, nil
}

// Parse decodes a pack from r and validates it. Unknown keys are rejected
func Parse(r io.Reader) (*Pack, error) {
	var p Pack
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Pack) validate() error {
	if p.Version != 1 {
		return fmt.Errorf("unsupported version %d (want 1)", p.Version)
	}
	if len(p.Intents) == 0 {
		return fmt.Errorf("no intents")
	}
	if len(p.Seats) == 0 {
		return fmt.Errorf("empty seat pool")
	}
	for _, s := range p.Seats {
		if !seatRE.MatchString(s) {
			return fmt.Errorf("seat %q: want row digits and a letter A-C", s)
		}
	}
	for w, d := range p.NumberWords {
		if len(d) != 1 || d[0] < '0' || d[0] > '9' {
			return fmt.Errorf("number word %q maps to %q, want one digit", w, d)
		}
	}
	if _, ok := p.Help.Texts[p.Help.Default]; !ok {
		return fmt.Errorf("help default %q has no text", p.Help.Default)
	}
	if err := checkTemplate("unknown", p.Unknown); err != nil {
		return err
	}

	p.index = make(map[string]int, len(p.Intents))
	for i := range p.Intents {
		it := &p.Intents[i]
		it.Name = strings.TrimSpace(it.Name)
		if it.Name == "" {
			return fmt.Errorf("intent #%d has no name", i)
		}
		if _, dup := p.index[it.Name]; dup {
			return fmt.Errorf("duplicate intent %q", it.Name)
		}
		p.index[it.Name] = i

		if it.Action.Type == "" {
			it.Action.Type = ActionNone
		}
		if _, ok := actionTypes[it.Action.Type]; !ok {
			return fmt.Errorf("intent %s: unknown action type %q", it.Name, it.Action.Type)
		}
		if _, ok := entityKeys[it.Requires]; !ok {
			return fmt.Errorf("intent %s: unknown required entity %q", it.Name, it.Requires)
		}
		if it.Response == "" {
			return fmt.Errorf("intent %s: empty response", it.Name)
		}
		for field, tpl := range map[string]string{
			"response": it.Response, "missing": it.Missing,
			"action.value": it.Action.Value, "action.missing": it.Action.Missing,
		} {
			if err := checkTemplate(it.Name+" "+field, tpl); err != nil {
				return err
			}
		}
		for j, ph := range it.Phrases {
			ph = strings.ToLower(strings.TrimSpace(ph))
			if ph == "" {
				return fmt.Errorf("intent %s: blank phrase", it.Name)
			}
			it.Phrases[j] = ph
		}
	}
	return nil
}

var seatRE = regexp.MustCompile(`^\d{1,2}[A-C]$`)

func checkTemplate(where, tpl string) error {
	for _, m := range placeholderRE.FindAllStringSubmatch(tpl, -1) {
		if _, ok := placeholders[m[1]]; !ok {
			return fmt.Errorf("%s: unknown placeholder {%s}", where, m[1])
		}
	}
	return nil
}

// Lookup returns the intent named name
func (p *Pack) Lookup(name string) (Intent, bool) {
	i, ok := p.index[name]
	if !ok {
		return Intent{}, false
	}
	return p.Intents[i], true
}

// Names lists intent names in catalogue order
func (p *Pack) Names() []string {
	out := make([]string, len(p.Intents))
	for i, it := range p.Intents {
		out[i] = it.Name
	}
	return out
}

// HelpFor returns the help text for a context tag, falling back to the default entry
func (p *Pack) HelpFor(context string) string {
	if t, ok := p.Help.Texts[context]; ok {
		return t
	}
	return p.Help.Texts[p.Help.Default]
}

// Contexts lists the tags with dedicated help text, sorted
func (p *Pack) Contexts() []string {
	out := make([]string, 0, len(p.Help.Texts))
	for k := range p.Help.Texts {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
