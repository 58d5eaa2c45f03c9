package domain

// Breakdown groups scored outcomes by GroupKey in order of first appearance.
// Earned and possible points are summed per group before the percentage is taken,
// so a group's percentage is never an average of item percentages.
func Breakdown(outcomes []ItemOutcome) []GroupBreakdown {
	groups := make([]GroupBreakdown, 0)
	position := make(map[string]int)
	for _, o := range outcomes {
		idx, ok := position[o.GroupKey]
		if !ok {
			idx = len(groups)
			position[o.GroupKey] = idx
			groups = append(groups, GroupBreakdown{GroupKey: o.GroupKey, GroupName: o.GroupName})
		}
		groups[idx].Earned += o.Earned
		groups[idx].Possible += o.Possible
	}
	for i := range groups {
		groups[i].Percentage = Percentage(groups[i].Earned, groups[i].Possible)
	}
	return groups
}
