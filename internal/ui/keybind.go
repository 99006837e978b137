package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Sequences use leader notation: "SPC g d" is space, then g, then d.
// Plain keys are spelled the way tea.KeyMsg.String() spells them.
const leaderSeq = "SPC"

type binding struct {
	cmd     tea.Cmd
	desc    string
	screens []Screen // empty: every screen
}

func (b binding) on(screen Screen) bool {
	return len(b.screens) == 0 || slices.Contains(b.screens, screen)
}

// KeybindRegistry maps key sequences to commands.
type KeybindRegistry struct {
	bindings map[string]binding
	groups   map[string]string // prefix -> label shown while it is pending
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]binding),
		groups:   make(map[string]string),
	}
}

// Bind registers seq on every screen without a help description.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDescForScreen(seq, cmd, "", nil)
}

// BindWithDesc registers seq on every screen.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForScreen(seq, cmd, desc, nil)
}

// BindWithDescForScreen registers seq on the given screens only. A later
// binding for the same sequence replaces the earlier one.
func (r *KeybindRegistry) BindWithDescForScreen(seq string, cmd tea.Cmd, desc string, screens []Screen) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, screens: screens}
}

// Group labels a sequence prefix, e.g. "SPC g" as "Go to", for the help
// view shown while more keys are expected.
func (r *KeybindRegistry) Group(prefix, label string) {
	r.groups[normalizeSeq(prefix)] = label
}

// Lookup returns the command bound to seq on any screen.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

// LookupOn returns the command bound to seq if the binding exists on screen.
func (r *KeybindRegistry) LookupOn(seq string, screen Screen) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.on(screen) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether a longer binding continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns the keys that may follow currentSeq on screen, each
// with its description. An empty currentSeq means just the leader. Keys
// that open a further level show their group label instead.
func (r *KeybindRegistry) LeaderHints(currentSeq string, screen Screen) map[string]string {
	if currentSeq == "" {
		currentSeq = leaderSeq
	}
	prefix := normalizeSeq(currentSeq) + " "
	out := make(map[string]string)
	for seq, b := range r.bindings {
		if b.cmd == nil || !b.on(screen) || !strings.HasPrefix(seq, prefix) {
			continue
		}
		next, rest, nested := strings.Cut(strings.TrimPrefix(seq, prefix), " ")
		switch {
		case nested && rest != "":
			if label, ok := r.groups[prefix+next]; ok {
				out[next] = label
			} else if _, seen := out[next]; !seen {
				out[next] = next + "…"
			}
		case b.desc != "":
			out[next] = b.desc
		default:
			out[next] = seq
		}
	}
	return out
}

func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart spells one tea key the way sequences do.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return leaderSeq
	}
	return s
}

// KeyHandler tracks a pending leader sequence and dispatches completed
// sequences through the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	Screen        Screen   // bindings restricted to other screens are skipped
	LeaderSeq     string
	LeaderWaiting bool
	Buffer        []string // the sequence typed so far, leader first
}

// NewKeyHandler creates a handler with space as the leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg, LeaderSeq: leaderSeq}
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Handle offers msg to the keybind layer. consumed means views must not
// see the key; cmd is the bound command, if one completed.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	part := keyToSeqPart(msg.String())

	switch {
	case part == "esc":
		if !h.LeaderWaiting {
			return false, nil
		}
		h.reset()
		return true, nil

	case !h.LeaderWaiting && part == h.LeaderSeq:
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil

	case h.LeaderWaiting:
		h.Buffer = append(h.Buffer, part)
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.LookupOn(seq, h.Screen); c != nil {
			h.reset()
			return true, c
		}
		// Unknown sequences are swallowed so a stray key never leaks to
		// the screen mid-sequence.
		if !h.Registry.HasPrefix(seq) {
			h.reset()
		}
		return true, nil
	}

	if c := h.Registry.LookupOn(part, h.Screen); c != nil {
		return true, c
	}
	return false, nil
}

// KeyMap adapts the pending sequence's hints to help.KeyMap.
type KeyMap struct {
	keyHandler *KeyHandler
}

// NewKeyMap creates a KeyMap for h.
func NewKeyMap(h *KeyHandler) help.KeyMap {
	return &KeyMap{keyHandler: h}
}

// ShortHelp returns the next keys in sorted order, then esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	h := km.keyHandler
	if h == nil || h.Registry == nil {
		return nil
	}
	hints := h.Registry.LeaderHints(strings.Join(h.Buffer, " "), h.Screen)
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(out, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp implements help.KeyMap.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if short := km.ShortHelp(); len(short) > 0 {
		return [][]key.Binding{short}
	}
	return nil
}
