package cm

// Patch is what a logic handler returns. Props are merged over the accumulated props; Omit names
// props withheld from the host for this render only. The zero Patch changes nothing.
type Patch struct {
	Props Props
	Omit  []string
}

// LogicHandler runs before class and style computation. Each handler sees the result of all
// handlers before it.
type LogicHandler func(props Props) Patch

// applyLogic runs handlers in order and returns the resolved props together with the one-time
// omissions they requested. props itself is never modified.
func applyLogic(props Props, handlers []LogicHandler) (Props, []string) {
	if len(handlers) == 0 {
		return props, nil
	}

	accumulated := props.Clone()
	var omit []string
	seen := map[string]struct{}{}
	addOmit := func(keys []string) {
		for _, k := range keys {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			omit = append(omit, k)
		}
	}

	for _, handler := range handlers {
		if handler == nil {
			continue
		}
		patch := handler(accumulated)
		addOmit(patch.Omit)
		if len(patch.Props) == 0 {
			continue
		}
		rest := patch.Props.Clone()
		if keys, ok := rest[OmitProp].([]string); ok {
			addOmit(keys)
		}
		delete(rest, OmitProp)
		accumulated = accumulated.With(rest)
	}

	return accumulated, omit
}
