// Package rules holds the transformation rules used by the cronpatch commands.
package rules

import (
	"fmt"

	"github.com/aatumaykin/cronpatch/internal/patcher"
)

const (
	// ModeAnnounce is the delivery mode assumed when a job has none.
	ModeAnnounce = "announce"

	RuleLegacyRecipient  = "legacy-recipient"
	RuleMissingRecipient = "missing-recipient"
	RuleAnnounceDefault  = "announce-default"
)

// DeliveryPolicy configures the delivery normalization rules.
type DeliveryPolicy struct {
	DefaultChannel string
	DefaultTo      string
	// LegacyTo is the placeholder recipient rewritten by the legacy-recipient rule.
	// Empty disables that rule.
	LegacyTo string
}

// Delivery returns the delivery normalization rules in evaluation order.
func Delivery(p DeliveryPolicy) []patcher.Rule {
	return []patcher.Rule{
		{Name: RuleLegacyRecipient, Apply: p.legacyRecipient},
		{Name: RuleMissingRecipient, Apply: p.missingRecipient},
		{Name: RuleAnnounceDefault, Apply: p.announceDefault},
	}
}

// legacyRecipient replaces the legacy placeholder recipient of a channel-less job.
func (p DeliveryPolicy) legacyRecipient(rec patcher.Record) (patcher.Record, string, bool) {
	d, ok := rec.Object("delivery")
	if !ok || p.LegacyTo == "" || p.DefaultTo == "" {
		return rec, "", false
	}

	to, isString := d["to"].(string)
	if !isString || to != p.LegacyTo || !blank(d["channel"]) {
		return rec, "", false
	}

	next := withDelivery(rec, d, map[string]any{
		"channel": p.DefaultChannel,
		"to":      p.DefaultTo,
	})
	return next, fmt.Sprintf("to %q without channel → %s", to, p.DefaultChannel), true
}

// missingRecipient fills in the recipient of a job already bound to the default channel.
func (p DeliveryPolicy) missingRecipient(rec patcher.Record) (patcher.Record, string, bool) {
	d, ok := rec.Object("delivery")
	if !ok || p.DefaultTo == "" {
		return rec, "", false
	}

	channel, isString := d["channel"].(string)
	if !isString || channel != p.DefaultChannel || !blank(d["to"]) {
		return rec, "", false
	}

	next := withDelivery(rec, d, map[string]any{"to": p.DefaultTo})
	return next, fmt.Sprintf("%s channel without recipient", channel), true
}

// announceDefault routes announce jobs with neither channel nor recipient to the default channel.
func (p DeliveryPolicy) announceDefault(rec patcher.Record) (patcher.Record, string, bool) {
	d, ok := rec.Object("delivery")
	if !ok || p.DefaultTo == "" {
		return rec, "", false
	}

	if deliveryMode(d) != ModeAnnounce || !blank(d["channel"]) || !blank(d["to"]) {
		return rec, "", false
	}

	next := withDelivery(rec, d, map[string]any{
		"channel": p.DefaultChannel,
		"to":      p.DefaultTo,
	})
	return next, fmt.Sprintf("announce without target → %s", p.DefaultChannel), true
}

// withDelivery returns a copy of rec whose delivery is a copy of d with set applied.
// A missing mode is written out explicitly as announce.
func withDelivery(rec patcher.Record, d map[string]any, set map[string]any) patcher.Record {
	nd := make(map[string]any, len(d)+len(set)+1)
	for k, v := range d {
		nd[k] = v
	}
	nd["mode"] = deliveryMode(d)
	for k, v := range set {
		nd[k] = v
	}

	next := rec.Clone()
	next["delivery"] = nd
	return next
}

func deliveryMode(d map[string]any) string {
	if mode, ok := d["mode"].(string); ok && mode != "" {
		return mode
	}
	return ModeAnnounce
}

// blank reports whether a delivery field is absent, null or an empty string.
func blank(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	default:
		return false
	}
}
