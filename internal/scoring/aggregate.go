package scoring

// ReverseScore returns a copy of responses with every answered question in
// reverse reflected on scale. Questions that were not answered stay absent.
func ReverseScore(responses Responses, reverse map[string]struct{}, scale Scale) Responses {
	out := make(Responses, len(responses))
	for id, v := range responses {
		if _, ok := reverse[id]; ok {
			v = scale.Reflect(v)
		}
		out[id] = v
	}
	return out
}

// GroupMean averages the answers for ids. An unanswered id contributes 0 to
// the sum but still counts towards the divisor, so partial submissions pull
// the mean down. An empty group scores 0.
func GroupMean(ids []string, responses Responses) float64 {
	if len(ids) == 0 {
		return 0
	}
	var sum float64
	for _, id := range ids {
		sum += responses[id]
	}
	return sum / float64(len(ids))
}

// AggregateGroups applies GroupMean to every group.
func AggregateGroups(groups []Group, responses Responses) map[string]float64 {
	out := make(map[string]float64, len(groups))
	for _, g := range groups {
		out[g.Name] = GroupMean(g.Questions, responses)
	}
	return out
}

// AnsweredCount reports how many of ids have an answer.
func AnsweredCount(ids []string, responses Responses) int {
	n := 0
	for _, id := range ids {
		if _, ok := responses[id]; ok {
			n++
		}
	}
	return n
}
