package rules

import (
	"fmt"

	"github.com/aatumaykin/cronpatch/internal/patcher"
)

const (
	// KindAgentTurn is the payload kind of jobs that run an agent turn.
	KindAgentTurn = "agentTurn"

	RuleAssignModel = "assign-model"
)

// Model returns the rule that pins the model of every agentTurn job to target.
func Model(target string) []patcher.Rule {
	return []patcher.Rule{{
		Name: RuleAssignModel,
		Apply: func(rec patcher.Record) (patcher.Record, string, bool) {
			payload, ok := rec.Object("payload")
			if !ok {
				return rec, "", false
			}
			if kind, _ := payload["kind"].(string); kind != KindAgentTurn {
				return rec, "", false
			}

			prev, isString := payload["model"].(string)
			if isString && prev == target {
				return rec, "", false
			}

			np := make(map[string]any, len(payload)+1)
			for k, v := range payload {
				np[k] = v
			}
			np["model"] = target

			next := rec.Clone()
			next["payload"] = np

			reason := fmt.Sprintf("→ %s", target)
			if isString && prev != "" {
				reason = fmt.Sprintf("%s → %s", prev, target)
			}
			return next, reason, true
		},
	}}
}
