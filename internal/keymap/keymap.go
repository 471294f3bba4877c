package keymap

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// ErrUnknownAction is returned when an override names an action that
// does not exist.
var ErrUnknownAction = errors.New("unknown action")

// Defaults returns the default key bindings.
func Defaults() []Binding {
	return []Binding{
		// Global
		{ActionQuit, []string{"q", "esc", "ctrl+c"}, "Quit", ContextGlobal},
		{ActionHelp, []string{"?", "h"}, "Toggle help", ContextGlobal},

		// Navigation
		{ActionMoveDown, []string{"j", "down"}, "Move down", ContextNavigation},
		{ActionMoveUp, []string{"k", "up"}, "Move up", ContextNavigation},
		{ActionFirstTrack, []string{"g", "home"}, "First track", ContextNavigation},
		{ActionLastTrack, []string{"G", "end"}, "Last track", ContextNavigation},

		// Playback
		{ActionPlayPause, []string{"space"}, "Play/pause", ContextPlayback},
		{ActionPlaySelected, []string{"enter"}, "Play selected", ContextPlayback},
		{ActionNextTrack, []string{"n"}, "Next track", ContextPlayback},
		{ActionPrevTrack, []string{"p"}, "Previous track", ContextPlayback},
		{ActionToggleShuffle, []string{"s"}, "Toggle shuffle", ContextPlayback},
		{ActionCycleRepeat, []string{"r"}, "Cycle repeat mode", ContextPlayback},
		{ActionStop, []string{"S"}, "Stop", ContextPlayback},
	}
}

// ByContext returns the bindings of one context, in order.
func ByContext(bindings []Binding, context string) []Binding {
	return lo.Filter(bindings, func(b Binding, _ int) bool {
		return b.Context == context
	})
}

// WithOverrides replaces the keys of the named actions. A key claimed by an
// override is removed from every other action so each key maps to exactly
// one action.
func WithOverrides(bindings []Binding, overrides map[string][]string) ([]Binding, error) {
	if len(overrides) == 0 {
		return bindings, nil
	}

	known := lo.SliceToMap(bindings, func(b Binding) (Action, bool) {
		return b.Action, true
	})
	replaced := make(map[Action][]string, len(overrides))
	var claimed []string
	for name, keys := range overrides {
		if !known[Action(name)] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		keys = lo.Uniq(lo.Map(keys, func(k string, _ int) string { return normalize(k) }))
		replaced[Action(name)] = keys
		claimed = append(claimed, keys...)
	}

	result := make([]Binding, len(bindings))
	for i, b := range bindings {
		if keys, ok := replaced[b.Action]; ok {
			b.Keys = keys
		} else {
			b.Keys = slices.DeleteFunc(slices.Clone(b.Keys), func(k string) bool {
				return slices.Contains(claimed, k)
			})
		}
		result[i] = b
	}
	return result, nil
}
