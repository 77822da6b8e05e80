package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zmk-tools/zmk2vial/internal/log"
	m "github.com/zmk-tools/zmk2vial/internal/model"
)

// Parser turns raw ZMK keymap text into the internal layer model. Parsing is
// tolerant of comments and whitespace and preserves layer declaration order,
// which is the layer's activation index.
type Parser interface {
	Parse(content []byte) (m.Keymap, error)
}

type parser struct {
	log zerolog.Logger
}

// NewParser constructs the ZMK keymap parser.
func NewParser() Parser {
	return &parser{log: log.WithComponent("parser")}
}

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`(?m)//.*$`)

	// Devicetree nodes of the form `name: name { ... }`. RE2 has no
	// backreferences, so label and node name are matched separately and
	// compared in code.
	behaviorNode = regexp.MustCompile(`(\w+):\s*(\w+)\s*\{([^}]+)\}`)
	mtOverride   = regexp.MustCompile(`&mt\s*\{([^}]+)\}`)

	tappingTermProp = regexp.MustCompile(`tapping-term-ms\s*=\s*<(\d+)>`)
	flavorProp      = regexp.MustCompile(`flavor\s*=\s*"([^"]+)"`)
	priorIdleProp   = regexp.MustCompile(`require-prior-idle-ms\s*=\s*<(\d+)>`)

	layerNode = regexp.MustCompile(`(\w+)\s*\{[^{}]*bindings\s*=\s*<([\s\S]*?)>\s*;`)
)

func (p *parser) Parse(content []byte) (m.Keymap, error) {
	text := stripComments(string(content))

	keymap := m.Keymap{Behaviors: parseBehaviors(text)}

	block, ok := keymapBlock(text)
	if !ok {
		return m.Keymap{}, fmt.Errorf("%w: no keymap block found", m.ErrInvalidSourceFormat)
	}

	for _, match := range layerNode.FindAllStringSubmatch(block, -1) {
		name := strings.TrimSuffix(match[1], "_layer")

		bindings, err := p.parseBindings(match[2], keymap.Behaviors)
		if err != nil {
			return m.Keymap{}, fmt.Errorf("layer %q: %w", name, err)
		}
		if len(bindings) == 0 {
			continue
		}
		keymap.Layers = append(keymap.Layers, m.Layer{Name: name, Bindings: bindings})
	}

	if len(keymap.Layers) == 0 {
		return m.Keymap{}, fmt.Errorf("%w: keymap block declares no layers", m.ErrInvalidSourceFormat)
	}

	p.log.Debug().Int("layers", len(keymap.Layers)).Int("behaviors", len(keymap.Behaviors)).Msg("parsed keymap")
	return keymap, nil
}

func stripComments(text string) string {
	text = blockComment.ReplaceAllString(text, "")
	return lineComment.ReplaceAllString(text, "")
}

// keymapBlock extracts the `keymap { ... }` node by brace counting; layer
// bindings contain nested braces, so a regex alone cannot delimit it.
func keymapBlock(text string) (string, bool) {
	start := strings.Index(text, "keymap {")
	if start < 0 {
		return "", false
	}

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// parseBehaviors collects hold-tap tuning from `name: name { ... }` nodes
// and from a `&mt { ... }` override block. Macro nodes are skipped; the
// destination template is authoritative for macros.
func parseBehaviors(text string) map[string]m.Behavior {
	behaviors := make(map[string]m.Behavior)

	for _, match := range behaviorNode.FindAllStringSubmatch(text, -1) {
		if match[1] != match[2] {
			continue
		}
		body := match[3]
		if strings.Contains(body, "zmk,behavior-macro") {
			continue
		}
		behaviors[match[1]] = behaviorFromBody(match[1], body)
	}

	if match := mtOverride.FindStringSubmatch(text); match != nil {
		behaviors["mt"] = behaviorFromBody("mt", match[1])
	}
	return behaviors
}

func behaviorFromBody(name, body string) m.Behavior {
	b := m.Behavior{Name: name, TappingTermMS: 200, Flavor: "tap-preferred"}
	if match := tappingTermProp.FindStringSubmatch(body); match != nil {
		b.TappingTermMS, _ = strconv.Atoi(match[1])
	}
	if match := flavorProp.FindStringSubmatch(body); match != nil {
		b.Flavor = match[1]
	}
	if match := priorIdleProp.FindStringSubmatch(body); match != nil {
		b.RequirePriorIdle, _ = strconv.Atoi(match[1])
	}
	return b
}

func (p *parser) parseBindings(bindings string, behaviors map[string]m.Behavior) ([]m.Binding, error) {
	tokens := strings.Fields(bindings)

	var out []m.Binding
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if !strings.HasPrefix(tok, "&") {
			return nil, fmt.Errorf("%w: unexpected token %q in bindings", m.ErrInvalidSourceFormat, tok)
		}
		behavior := tok[1:]

		switch {
		case behavior == "none":
			out = append(out, m.None())
			i++

		case behavior == "trans":
			out = append(out, m.Transparent())
			i++

		case behavior == "kp":
			args, err := takeArgs(tokens, i, 1)
			if err != nil {
				return nil, err
			}
			out = append(out, m.Keycode(args[0]))
			i += 2

		case behavior == "lt":
			args, err := takeArgs(tokens, i, 2)
			if err != nil {
				return nil, err
			}
			layer, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("%w: layer-tap index %q is not a number", m.ErrInvalidSourceFormat, args[0])
			}
			out = append(out, m.Binding{
				Kind:    m.BindingLayerTap,
				Layer:   layer,
				Keycode: args[1],
				Raw:     strings.Join(tokens[i:i+3], " "),
			})
			i += 3

		case behavior == "mo" || behavior == "to":
			args, err := takeArgs(tokens, i, 1)
			if err != nil {
				return nil, err
			}
			layer, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("%w: layer index %q is not a number", m.ErrInvalidSourceFormat, args[0])
			}
			kind := m.BindingMomentary
			if behavior == "to" {
				kind = m.BindingToLayer
			}
			out = append(out, m.Binding{Kind: kind, Layer: layer, Raw: strings.Join(tokens[i:i+2], " ")})
			i += 2

		case behavior == "bt":
			// Bluetooth control has no destination equivalent. Swallow the
			// subcommand, and the profile index after BT_SEL.
			consumed := 1
			if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "&") {
				consumed = 2
				if tokens[i+1] == "BT_SEL" && i+2 < len(tokens) && !strings.HasPrefix(tokens[i+2], "&") {
					consumed = 3
				}
			}
			out = append(out, m.Binding{Kind: m.BindingNone, Raw: strings.Join(tokens[i:i+consumed], " ")})
			i += consumed

		case behavior == "mt" || isHoldTap(behavior, behaviors):
			args, err := takeArgs(tokens, i, 2)
			if err != nil {
				return nil, err
			}
			out = append(out, m.Binding{
				Kind:    m.BindingModTap,
				Hold:    args[0],
				Keycode: args[1],
				Raw:     strings.Join(tokens[i:i+3], " "),
			})
			i += 3

		default:
			// Undeclared behavior followed by two plain arguments: treat as
			// a custom hold-tap, the common shape in user keymaps. Anything
			// else is carried as unsupported and fails in the mapper.
			if i+2 < len(tokens) && !strings.HasPrefix(tokens[i+1], "&") && !strings.HasPrefix(tokens[i+2], "&") {
				out = append(out, m.Binding{
					Kind:    m.BindingModTap,
					Hold:    tokens[i+1],
					Keycode: tokens[i+2],
					Raw:     strings.Join(tokens[i:i+3], " "),
				})
				i += 3
				continue
			}
			out = append(out, m.Binding{Kind: m.BindingUnsupported, Raw: tok})
			i++
		}
	}

	return out, nil
}

func isHoldTap(behavior string, behaviors map[string]m.Behavior) bool {
	_, ok := behaviors[behavior]
	return ok
}

func takeArgs(tokens []string, i, n int) ([]string, error) {
	if i+n >= len(tokens) {
		return nil, fmt.Errorf("%w: binding %q is missing arguments", m.ErrInvalidSourceFormat, tokens[i])
	}
	args := tokens[i+1 : i+1+n]
	for _, arg := range args {
		if strings.HasPrefix(arg, "&") {
			return nil, fmt.Errorf("%w: binding %q is missing arguments", m.ErrInvalidSourceFormat, tokens[i])
		}
	}
	return args, nil
}
