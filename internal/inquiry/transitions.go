package inquiry

// Statuses only ever move forward. A completed inquiry is terminal.
var transitionMap = map[Status][]Status{
	StatusNew:       {StatusContacted, StatusCompleted},
	StatusContacted: {StatusCompleted},
}

// CanTransition reports whether an admin may move an inquiry from one status
// to another.
func CanTransition(from, to Status) bool {
	allowed, ok := transitionMap[from]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == to {
			return true
		}
	}
	return false
}
